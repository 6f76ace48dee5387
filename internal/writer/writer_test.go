package writer

import (
	"strconv"
	"strings"
	"testing"

	"github.com/retroenv/biostables/internal/extractor"
	"github.com/retroenv/retrogolib/assert"
)

func patternTables() *extractor.TableSet {
	var tables extractor.TableSet
	for i := range tables {
		for j := range tables[i] {
			tables[i][j] = byte(i*31 + j*3)
		}
	}
	return &tables
}

// parseLiteral parses the rendered literal back into a table set.
func parseLiteral(t *testing.T, s string) extractor.TableSet {
	t.Helper()

	const prefix = "const bios_table_lookup = [["
	const suffix = "]];\n"
	assert.True(t, strings.HasPrefix(s, prefix), "missing literal prefix")
	assert.True(t, strings.HasSuffix(s, suffix), "missing literal suffix")

	body := strings.TrimSuffix(strings.TrimPrefix(s, prefix), suffix)
	rows := strings.Split(body, "], [")
	assert.Equal(t, extractor.TableCount, len(rows))

	var tables extractor.TableSet
	for i, row := range rows {
		values := strings.Split(row, ", ")
		assert.Equal(t, extractor.TableSize, len(values))
		for j, value := range values {
			n, err := strconv.ParseUint(value, 10, 8)
			assert.NoError(t, err)
			assert.Equal(t, value, strconv.FormatUint(n, 10), "value must not have leading zeros")
			tables[i][j] = byte(n)
		}
	}
	return tables
}

func TestRenderRoundTrip(t *testing.T) {
	tables := patternTables()

	actual := parseLiteral(t, Render(tables))
	assert.Equal(t, *tables, actual)
}

func TestRenderShape(t *testing.T) {
	var tables extractor.TableSet
	tables[0][0] = 255
	tables[0][1] = 7
	tables[extractor.TableCount-1][extractor.TableSize-1] = 100

	s := Render(&tables)
	assert.True(t, strings.HasPrefix(s, "const bios_table_lookup = [[255, 7, 0, 0, "))
	assert.True(t, strings.HasSuffix(s, ", 0, 100]];\n"))
	assert.Equal(t, 1, strings.Count(s, "\n"))
	assert.Equal(t, extractor.TableCount-1, strings.Count(s, "], ["))
	assert.False(t, strings.Contains(s, ",]"))
	assert.False(t, strings.Contains(s, ", ]"))

	// 20 rows of 256 values: 255 separators per row plus 19 between rows
	assert.Equal(t, extractor.TableCount*(extractor.TableSize-1)+extractor.TableCount-1, strings.Count(s, ", "))
}
