/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads apierrors settings (default messages and status
// mapping rules) from YAML.
//
//	messages:
//	  generic: Something went wrong
//	  validation: Invalid request
//	  not_found_format: "%s does not exist"
//	mapping:
//	  http:
//	    overrides:
//	      canceled: 499
//
// Problems in the file are reported as a *apierrors.ValidationError whose
// fields are YAML paths, so the library's own error shape describes them.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"dirpx.dev/apierrors"
	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/mapper"
	"gopkg.in/yaml.v3"
)

// File is the decoded configuration.
type File struct {
	// Messages replaces apierrors.DefaultMessages() when set. Omitted
	// entries keep their default.
	Messages *apierrors.MessageDefaults `yaml:"messages"`
	Mapping  mapper.Config              `yaml:"mapping"`
}

// Load decodes and validates a configuration. Unknown keys are rejected.
// An empty document yields a zero File.
func Load(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer fh.Close()
	return Load(fh)
}

// Validate reports every invalid entry as one *apierrors.ValidationError.
func (f *File) Validate() error {
	var fe apierrors.FieldErrors
	if m := f.Messages; m != nil {
		if err := merged(*m).Validate(); err != nil {
			fe.Add("messages", err.Error())
		}
	}
	opts, issues := f.Mapping.Options()
	for _, is := range issues {
		fe.Add("mapping."+is.Path, is.Message)
	}
	if len(issues) == 0 {
		if _, err := mapper.New(opts...); err != nil {
			fe.Add("mapping", err.Error())
		}
	}
	return fe.Err(apierrors.WithMessage("Invalid apierrors configuration"), apierrors.WithReason("config.load"))
}

// Apply installs the message defaults and builds the status mapper.
func (f *File) Apply() (apis.Mapper, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	opts, _ := f.Mapping.Options()
	m, err := mapper.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if f.Messages != nil {
		if err := apierrors.SetMessages(merged(*f.Messages)); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	return m, nil
}

// merged fills blank entries of m from apierrors.DefaultMessages().
func merged(m apierrors.MessageDefaults) apierrors.MessageDefaults {
	d := apierrors.DefaultMessages()
	if m.Generic == "" {
		m.Generic = d.Generic
	}
	if m.Validation == "" {
		m.Validation = d.Validation
	}
	if m.NotFoundFormat == "" {
		m.NotFoundFormat = d.NotFoundFormat
	}
	return m
}
