// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

// Package mock holds generated mocks used by the tests of this module.
package mock

//go:generate mockgen -destination=read_closer.go -package=mock io ReadCloser
//go:generate mockgen -destination=put_events.go -package=mock github.com/hashicorp/go-anygz/telemetry/eventbridge PutEventsAPI
