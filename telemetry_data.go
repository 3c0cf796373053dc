// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package anygz

import (
	"context"
	"encoding/json"
	"time"
)

// TelemetryData holds all telemetry data of a [Reader].
type TelemetryData struct {
	// Format is the detected format of the stream
	Format string `json:"format"`

	// InputSize is the number of bytes read from the source
	InputSize int64 `json:"input_size"`

	// OutputSize is the number of bytes delivered to the caller
	OutputSize int64 `json:"output_size"`

	// ReadDuration is the time between construction and close of the reader
	ReadDuration time.Duration `json:"read_duration"`

	// ReadErrors is the number of failed read calls
	ReadErrors int64 `json:"read_errors"`

	// LastReadError is the last error returned by a read call
	LastReadError error `json:"last_read_error"`
}

// String returns a string representation of [TelemetryData].
func (m TelemetryData) String() string {
	b, _ := json.Marshal(m)
	return string(b)
}

// MarshalJSON implements the [encoding/json.Marshaler] interface.
func (m TelemetryData) MarshalJSON() ([]byte, error) {
	var lastError string
	if m.LastReadError != nil {
		lastError = m.LastReadError.Error()
	}

	type Alias TelemetryData
	return json.Marshal(&struct {
		LastReadError string `json:"last_read_error"`
		*Alias
	}{
		LastReadError: lastError,
		Alias:         (*Alias)(&m),
	})
}

// TelemetryHook is a function type that performs operations on [TelemetryData]
// after a reader has been closed, which can be used to submit the [TelemetryData]
// to a telemetry service, for example.
type TelemetryHook func(context.Context, *TelemetryData)

// captureReadDuration captures the duration since start in td.
func captureReadDuration(td *TelemetryData, start time.Time) {
	td.ReadDuration = time.Since(start)
}
