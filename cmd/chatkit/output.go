package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type OutputConfig struct {
	// CHATKIT_COLOURS enables colorized status cells
	Colours bool `envconfig:"CHATKIT_COLOURS" default:"true"`
	// CHATKIT_JSON prints one JSON document per line instead of a table
	JSON bool `envconfig:"CHATKIT_JSON" default:"false"`
}

func LoadOutputConfig() (OutputConfig, error) {
	var cfg OutputConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}

type Status string

const (
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

// Report collects one row per checked item and renders them as a table,
// or streams them as JSON lines.
type Report struct {
	out    io.Writer
	config OutputConfig
	header []string
	rows   [][]string
}

func NewReport(out io.Writer, config OutputConfig) *Report {
	return &Report{out: out, config: config}
}

func (r *Report) SetHeader(header ...string) {
	r.header = header
}

// Add records a row. In JSON mode doc is written immediately and cells are ignored.
func (r *Report) Add(status Status, doc any, cells ...string) error {
	if r.config.JSON {
		data, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.out, string(data))
		return err
	}
	r.rows = append(r.rows, append([]string{r.paint(status)}, cells...))
	return nil
}

func (r *Report) Render() {
	if r.config.JSON {
		return
	}
	table := tablewriter.NewWriter(r.out)
	table.SetHeader(append([]string{"Status"}, r.header...))
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.AppendBulk(r.rows)
	table.Render()
}

func (r *Report) paint(status Status) string {
	if !r.config.Colours {
		return string(status)
	}
	switch status {
	case StatusAccepted:
		return color.New(color.FgGreen, color.OpBold).Render(string(status))
	default:
		return color.New(color.FgRed, color.OpBold).Render(string(status))
	}
}
