package core

import (
	"github.com/aretw0/introspection"
)

// CollectorState exposes the collector configuration for observability.
type CollectorState struct {
	ReportParameters []string `json:"report_parameters"`
	NullText         string   `json:"null_text"`
}

// State implements introspection.Introspectable.
func (c *Collector) State() any {
	names := make([]string, 0, len(ReportParameters))
	for _, rp := range ReportParameters {
		names = append(names, string(rp.Name))
	}
	return CollectorState{
		ReportParameters: names,
		NullText:         NullText,
	}
}

// ComponentType implements introspection.Component.
func (c *Collector) ComponentType() string {
	return "collector"
}

var _ introspection.Introspectable = (*Collector)(nil)
var _ introspection.Component = (*Collector)(nil)
