package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"

	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

// printer writes detections as an aligned table or as JSON lines
type printer struct {
	out    io.Writer
	format string
	table  *tabwriter.Writer
	rows   int
}

func newPrinter(out io.Writer, format string) (*printer, error) {
	switch format {
	case "table":
		return &printer{out: out, format: format, table: tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)}, nil
	case "json":
		return &printer{out: out, format: format}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (use table or json)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

func (p *printer) detections(detections []model.Detection) error {
	for _, d := range detections {
		if p.format == "json" {
			if err := writeJSON(p.out, d); err != nil {
				return err
			}
			continue
		}
		if p.rows == 0 {
			fmt.Fprintln(p.table, "TIME\tPROTOCOL\tDEVICE TYPE\tSCORE\tSEVERITY\tCONFIDENCE\tIDENTIFIER\tINDICATORS")
		}
		p.rows++
		fmt.Fprintf(p.table, "%s\t%s\t%s\t%d\t%s\t%.0f%%\t%s\t%s\n",
			d.Timestamp.Format(time.RFC3339),
			d.Protocol,
			d.DeviceType,
			d.Threat.AdjustedScore,
			d.Threat.Severity,
			d.Threat.Confidence*100,
			identifier(d),
			strings.Join(d.Classification.Indicators, ","),
		)
	}
	return nil
}

func identifier(d model.Detection) string {
	switch {
	case d.Identifier != "" && d.MAC != "":
		return d.Identifier + " (" + d.MAC + ")"
	case d.Identifier != "":
		return d.Identifier
	case d.MAC != "":
		return d.MAC
	default:
		return "-"
	}
}

func (p *printer) flush() error {
	if p.table == nil {
		return nil
	}
	if p.rows == 0 {
		fmt.Fprintln(p.out, "No detections")
		return nil
	}
	return p.table.Flush()
}

func (p *printer) aggregate(r model.AggregateThreatResult) error {
	if p.format == "json" {
		return writeJSON(p.out, struct {
			Aggregate model.AggregateThreatResult `json:"aggregate"`
		}{r})
	}
	fmt.Fprintf(p.out, "\nAggregate: %s (%d) from %d detection(s) in %d incident(s)\n",
		r.Severity, r.Score, r.DetectionCount, r.IncidentCount)
	_, err := fmt.Fprintln(p.out, r.Reasoning)
	return err
}
