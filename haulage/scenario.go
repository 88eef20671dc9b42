// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package haulage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadScenario reads a scenario from a .json, .yaml or .yml file.
func LoadScenario(file string) (*Scenario, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data, filepath.Ext(file))
}

func ParseScenario(data []byte, ext string) (*Scenario, error) {
	var s Scenario

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parse yaml scenario: %w", err)
		}
	case ".json", "":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&s); err != nil {
			return nil, fmt.Errorf("parse json scenario: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported scenario format %q", ext)
	}

	for i, e := range s.Excavators {
		if e == nil {
			return nil, fmt.Errorf("excavator %d is empty", i+1)
		}
	}
	for i, p := range s.Plants {
		if p == nil {
			return nil, fmt.Errorf("plant %d is empty", i+1)
		}
	}

	return &s, nil
}
