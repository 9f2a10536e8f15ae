package config

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestNew(t *testing.T) {
	model := New()

	columns := model.configTable.Columns()
	be.Equal(t, 3, len(columns))
	be.Equal(t, "Setting", columns[0].Title)
	be.Equal(t, "Value", columns[1].Title)
	be.Equal(t, "Description", columns[2].Title)
}

func TestSetConfig(t *testing.T) {
	model := New()

	model.SetConfig(Config{
		Debug:  true,
		Data:   "/tmp/data.json",
		AsOf:   "2026-02-24",
		Period: "year",
	})

	rows := model.configTable.Rows()
	be.Equal(t, 4, len(rows))

	be.Equal(t, "Debug", rows[0][0])
	be.Equal(t, "true", rows[0][1])
	be.Equal(t, "Data", rows[1][0])
	be.Equal(t, "/tmp/data.json", rows[1][1])
	be.Equal(t, "As Of", rows[2][0])
	be.Equal(t, "2026-02-24", rows[2][1])
	be.Equal(t, "Period", rows[3][0])
	be.Equal(t, "year", rows[3][1])
}

func TestSetConfigDefaults(t *testing.T) {
	model := New()

	model.SetConfig(Config{})

	rows := model.configTable.Rows()
	be.Equal(t, "false", rows[0][1])
	be.Equal(t, "(built-in sample)", rows[1][1])
	be.Equal(t, "(today)", rows[2][1])
	be.Equal(t, "month", rows[3][1])
}

func TestOrDefault(t *testing.T) {
	be.Equal(t, "fallback", orDefault("", "fallback"))
	be.Equal(t, "value", orDefault("value", "fallback"))
}
