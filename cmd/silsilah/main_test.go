package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/silsilah-go/internal/config"
	"github.com/ukaji3/silsilah-go/pkg/silsilah/parser"
	"github.com/ukaji3/silsilah-go/pkg/silsilah/search"
	"github.com/ukaji3/silsilah-go/pkg/silsilah/source"
)

const familyCSV = "Pasangan Awal,Anak,Menantu Pertama,Status Menantu Pertama,Status Anak\n" +
	"II 1. Budi & Sari,,,,\n" +
	",1. Ani,Joko,Suami,Menikah,cucu1*,cucu2\n" +
	",2. Bayu,,,,\n"

func TestOutline(t *testing.T) {
	h := parser.ParseCSV(familyCSV, parser.DefaultOptions())

	assert.Equal(t, "Budi & Sari\n"+
		"  Ani (Menikah) - Pasangan: Joko (Suami)\n"+
		"    1. cucu1\n"+
		"    2. cucu2\n"+
		"  Bayu", outline(h, ""))

	filtered := search.Filter(h, "cucu2")
	assert.Equal(t, "Budi & Sari\n"+
		"  Ani (Menikah) - Pasangan: Joko (Suami)\n"+
		`    1. <span class="highlight">cucu2</span>`, outline(filtered, "cucu2"))

	assert.Equal(t, "Tidak ada hasil yang ditemukan.", outline(search.Filter(h, "zzz"), "zzz"))
}

func TestApplyFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&sourceLocation, "source", "", "")
	cmd.Flags().StringVar(&format, "format", "", "")
	cmd.Flags().StringVar(&boundary, "boundary", "", "")
	cmd.Flags().StringVar(&duplicates, "duplicates", "", "")
	cmd.Flags().StringVar(&sheet, "sheet", "", "")
	require.NoError(t, cmd.Flags().Parse([]string{
		"--source", "silsilah.xlsx", "--format", "xlsx", "--boundary", "legacy", "--duplicates", "replace", "--sheet", "Data",
	}))

	c := &config.Config{
		Source: config.SourceConfig{Location: config.DefaultSourceURL, MaxBodyBytes: 1},
		Server: config.ServerConfig{Addr: ":8080"},
	}
	require.NoError(t, applyFlags(cmd, c))

	assert.Equal(t, "silsilah.xlsx", c.Source.Location)
	assert.Equal(t, source.FormatXLSX, c.Source.Format)
	assert.Equal(t, parser.Options{Boundary: parser.BoundaryLegacy, Duplicates: parser.DuplicateReplace, Sheet: "Data"}, c.ParseOptions())
	assert.Equal(t, ":8080", c.Server.Addr)
}

func TestApplyFlagsInvalid(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&boundary, "boundary", "", "")
	require.NoError(t, cmd.Flags().Parse([]string{"--boundary", "widest"}))

	c := &config.Config{Source: config.SourceConfig{Location: "x", MaxBodyBytes: 1}}
	assert.Error(t, applyFlags(cmd, c))
}
