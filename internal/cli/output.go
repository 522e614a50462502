package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mcoot/imposter/internal/api/response"
	"github.com/mcoot/imposter/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		o.printJSON(map[string]string{"message": msg})
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Session:
		o.printSession(v)
	case response.CategoriesResponse:
		o.printCategories(v)
	case response.Preferences:
		o.printPreferences(v)
	case response.HealthResponse:
		_, _ = fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printSession(s response.Session) {
	tw := tabwriter.NewWriter(o.w, 0, 4, 1, ' ', 0)
	defer func() { _ = tw.Flush() }()

	if s.Phase == string(model.PhaseSetup) {
		_, _ = fmt.Fprintln(tw, "Phase:\tsetup")
		_, _ = fmt.Fprintln(tw, "No round in progress")
		return
	}

	_, _ = fmt.Fprintf(tw, "Round:\t%s\n", s.RoundID)
	_, _ = fmt.Fprintf(tw, "Phase:\t%s\n", s.Phase)
	if s.Phase == string(model.PhasePlaying) {
		_, _ = fmt.Fprintf(tw, "Player:\t%d of %d\n", s.PlayerNumber, s.PlayerCount)
	} else {
		_, _ = fmt.Fprintf(tw, "Players:\t%d\n", s.PlayerCount)
	}
	_, _ = fmt.Fprintf(tw, "Imposters:\t%d\n", s.ImposterCount)
	if s.Phase == string(model.PhasePlaying) {
		card := "hidden"
		if s.Revealed {
			card = fmt.Sprintf("%s (%s)", s.Value, s.Role)
		}
		_, _ = fmt.Fprintf(tw, "Card:\t%s\n", card)
	}
	_, _ = fmt.Fprintf(tw, "Remaining:\t%d\n", s.Remaining)
}

func (o *Output) printCategories(c response.CategoriesResponse) {
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tLABEL\tWORDS")
	for _, cat := range c.Categories {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\n", cat.ID, cat.Label, cat.WordCount)
	}
}

func (o *Output) printPreferences(p response.Preferences) {
	tw := tabwriter.NewWriter(o.w, 0, 4, 1, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintf(tw, "Players:\t%d\n", p.PlayerCount)
	_, _ = fmt.Fprintf(tw, "Imposters:\t%d\n", p.ImposterCount)
	_, _ = fmt.Fprintf(tw, "Category:\t%s\n", p.Category)
}
