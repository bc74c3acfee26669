// Package report renders an information Map as an aligned two-column text
// report.
package report

import (
	"bytes"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/go-tangra/go-tangra-sysindicator/internal/collector"
)

var labels = map[collector.Key]string{
	collector.OSName:            "Operating System",
	collector.Compiler:          "Compiler",
	collector.CPUName:           "CPU Name",
	collector.CPUVendor:         "CPU Vendor",
	collector.CPUType:           "CPU Type",
	collector.CPUArch:           "CPU Architecture",
	collector.CPUExt:            "CPU Extensions",
	collector.Processors:        "Processors",
	collector.LogicalProcessors: "Logical Processors",
	collector.ProcessorSpeed:    "Processor Speed",
	collector.L1Caches:          "L1 Cache",
	collector.L2Caches:          "L2 Cache",
	collector.L3Caches:          "L3 Cache",
	collector.TotalMemory:       "Total Memory",
	collector.FreeMemory:        "Free Memory",
}

// Label returns the display label of k, or "" when k is not rendered.
func Label(k collector.Key) string { return labels[k] }

type line struct {
	key    collector.Key
	size   collector.Key // cache lines only
	suffix string
}

var groups = [][]line{
	{
		{key: collector.OSName},
		{key: collector.Compiler},
	},
	{
		{key: collector.CPUName},
		{key: collector.CPUVendor},
		{key: collector.CPUType},
		{key: collector.CPUArch},
		{key: collector.CPUExt},
	},
	{
		{key: collector.Processors},
		{key: collector.LogicalProcessors},
		{key: collector.ProcessorSpeed, suffix: " MHz"},
	},
	{
		{key: collector.L1Caches, size: collector.L1CacheSize},
		{key: collector.L2Caches, size: collector.L2CacheSize},
		{key: collector.L3Caches, size: collector.L3CacheSize},
	},
	{
		{key: collector.TotalMemory, suffix: " MB"},
		{key: collector.FreeMemory, suffix: " MB"},
	},
}

// Options controls rendering.
type Options struct {
	// Color highlights labels with ANSI escapes.
	Color bool
}

// Render writes the report for m to w. Keys absent from m produce no line,
// and a blank line separates groups only after a group that printed
// something.
func Render(w io.Writer, m collector.Map) error {
	return RenderWithOptions(w, m, Options{})
}

// RenderWithOptions is Render with explicit options.
func RenderWithOptions(w io.Writer, m collector.Map, opts Options) error {
	_, err := w.Write(Format(m, opts))
	return err
}

// Format returns the rendered report.
func Format(m collector.Map, opts Options) []byte {
	width := 0
	for k, l := range labels {
		if _, ok := m[k]; ok {
			width = max(width, len(l))
		}
	}

	paint := color.New(color.FgCyan, color.Bold)
	if opts.Color {
		paint.EnableColor()
	} else {
		paint.DisableColor()
	}

	var buf bytes.Buffer
	separate := false
	for _, g := range groups {
		printed := 0
		for _, ln := range g {
			value, ok := ln.value(m)
			if !ok {
				continue
			}
			if separate {
				buf.WriteByte('\n')
				separate = false
			}
			label := labels[ln.key]
			buf.WriteString(paint.Sprint(label + ":"))
			buf.WriteString(strings.Repeat(" ", width+1-len(label)))
			buf.WriteString(value)
			buf.WriteByte('\n')
			printed++
		}
		if printed > 0 {
			separate = true
		}
	}
	return buf.Bytes()
}

func (ln line) value(m collector.Map) (string, bool) {
	v, ok := m[ln.key]
	if !ok {
		return "", false
	}
	if ln.size != "" {
		size, ok := m[ln.size]
		if !ok {
			return "", false
		}
		return v + "x " + size + " KB", true
	}
	return v + ln.suffix, true
}
