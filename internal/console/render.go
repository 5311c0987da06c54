package console

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-braintacle/internal/options"
	"github.com/MKhiriev/go-braintacle/models"
)

const inherited = "-"

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func renderOptions(w io.Writer, infos []models.OptionInfo) {
	t := newTable("OPTION", "KIND", "CLASS", "SECTION", "DEFAULT")
	for _, info := range infos {
		section := string(info.Section)
		if !info.Overridable {
			section = "global"
		}
		t.Row(info.Name, info.Kind, info.Class, section, info.Default.String())
	}
	fmt.Fprintln(w, t)
}

func renderGlobals(w io.Writer, values []models.OptionValue) {
	t := newTable("OPTION", "VALUE")
	for _, v := range values {
		t.Row(v.Option, v.Value.String())
	}
	fmt.Fprintln(w, t)
}

// renderCascade prints override, default and effective value per option.
// Inherited rows are dimmed.
func renderCascade(w io.Writer, title string, views []models.ClientConfigView) {
	t := newTable("OPTION", "OVERRIDE", "DEFAULT", "EFFECTIVE").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case views[row].Override == nil:
				return inheritedStyle
			default:
				return overrideStyle
			}
		})
	for _, v := range views {
		t.Row(v.Option, overrideText(v.Override), v.Default.String(), v.Effective.String())
	}

	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, t)
}

// renderReport prints one row per client and one column per option. Option
// columns are sorted by name.
func renderReport(w io.Writer, rows []models.EffectiveReportRow) {
	names := map[string]struct{}{}
	for _, row := range rows {
		for name := range row.Values {
			names[name] = struct{}{}
		}
	}
	columns := make([]string, 0, len(names))
	for name := range names {
		columns = append(columns, name)
	}
	sort.Strings(columns)

	t := newTable(append([]string{"CLIENT"}, columns...)...)
	for _, row := range rows {
		cells := []string{strconv.FormatInt(row.ClientID, 10)}
		for _, name := range columns {
			cells = append(cells, valueText(row.Values, name))
		}
		t.Row(cells...)
	}
	fmt.Fprintln(w, t)
}

func overrideText(v *options.Value) string {
	if v == nil {
		return inherited
	}
	return v.String()
}

func valueText(values map[string]options.Value, name string) string {
	v, ok := values[name]
	if !ok {
		return inherited
	}
	return v.String()
}
