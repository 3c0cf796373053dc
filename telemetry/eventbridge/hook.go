// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

// Package eventbridge publishes [anygz.TelemetryData] as CloudWatch Events
// (Amazon EventBridge) entries.
package eventbridge

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchevents"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchevents/types"
	"github.com/hashicorp/go-anygz"
)

// DetailType is the detail type of published events.
const DetailType = "anygz telemetry"

// DefaultSource is the event source used if none is given.
const DefaultSource = "go-anygz"

// PutEventsAPI is the part of the CloudWatch Events client used by the hook.
type PutEventsAPI interface {
	PutEvents(ctx context.Context, params *cloudwatchevents.PutEventsInput, optFns ...func(*cloudwatchevents.Options)) (*cloudwatchevents.PutEventsOutput, error)
}

// NewClient returns a CloudWatch Events client configured from the default
// credential chain (environment, shared config, instance role).
func NewClient(ctx context.Context, optFns ...func(*config.LoadOptions) error) (*cloudwatchevents.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("cannot load aws config: %w", err)
	}
	return cloudwatchevents.NewFromConfig(cfg), nil
}

// NewHook returns an [anygz.TelemetryHook] that publishes the telemetry data of
// every closed reader to the event bus busName. An empty busName selects the
// default bus, an empty source selects [DefaultSource]. Failures are logged to
// logger, a nil logger discards them.
func NewHook(client PutEventsAPI, busName, source string, logger *slog.Logger) anygz.TelemetryHook {
	if source == "" {
		source = DefaultSource
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(ctx context.Context, td *anygz.TelemetryData) {
		if err := Publish(ctx, client, busName, source, td); err != nil {
			logger.Error("cannot publish telemetry", "err", err)
		}
	}
}

// Publish sends td as a single event.
func Publish(ctx context.Context, client PutEventsAPI, busName, source string, td *anygz.TelemetryData) error {
	entry := types.PutEventsRequestEntry{
		Detail:     aws.String(td.String()),
		DetailType: aws.String(DetailType),
		Source:     aws.String(source),
		Time:       aws.Time(time.Now()),
	}
	if busName != "" {
		entry.EventBusName = aws.String(busName)
	}

	out, err := client.PutEvents(ctx, &cloudwatchevents.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{entry},
	})
	if err != nil {
		return fmt.Errorf("put events: %w", err)
	}

	for _, e := range out.Entries {
		if e.ErrorCode != nil {
			return fmt.Errorf("put events: %s: %s", aws.ToString(e.ErrorCode), aws.ToString(e.ErrorMessage))
		}
	}
	return nil
}
