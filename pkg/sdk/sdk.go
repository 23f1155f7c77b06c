package sdk

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const CTJSON string = "application/json"

type SDK interface {
	// Aggregate averages the parameters of the given updates on the
	// aggregator service. An empty roundID lets the service assign one.
	//
	// example:
	//  updates := []sdk.Update{
	//    {ParticipantID: "p1", Parameters: fl.ParameterSet[float64]{"w": fl.Vector(1.0, 2.0)}},
	//    {ParticipantID: "p2", Parameters: fl.ParameterSet[float64]{"w": fl.Vector(3.0, 4.0)}},
	//  }
	//  model, _ := sdk.Aggregate("round-1", updates)
	//  fmt.Println(model.Parameters)
	Aggregate(roundID string, updates []Update) (Model, error)
}

type aggSDK struct {
	aggregatorURL string
	client        *http.Client
}

type Config struct {
	AggregatorURL   string
	TLSVerification bool
}

func NewSDK(cfg Config) SDK {
	return &aggSDK{
		aggregatorURL: cfg.AggregatorURL,
		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: !cfg.TLSVerification,
				},
			},
		},
	}
}

type errorRes struct {
	Err string `json:"error"`
}

func (sdk *aggSDK) processRequest(method, reqURL string, data []byte, expectedRespCode int) ([]byte, error) {
	req, err := http.NewRequest(method, reqURL, bytes.NewReader(data))
	if err != nil {
		return []byte{}, err
	}

	req.Header.Add("Content-Type", CTJSON)

	resp, err := sdk.client.Do(req)
	if err != nil {
		return []byte{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return []byte{}, err
	}

	if resp.StatusCode != expectedRespCode {
		var e errorRes
		if err := json.Unmarshal(body, &e); err == nil && e.Err != "" {
			return []byte{}, fmt.Errorf("unexpected response code: %d: %s", resp.StatusCode, e.Err)
		}

		return []byte{}, fmt.Errorf("unexpected response code: %d", resp.StatusCode)
	}

	return body, nil
}
