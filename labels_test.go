package smoothtrack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadLabels(t *testing.T) {

	file := filepath.Join(t.TempDir(), "labels.txt")

	content := "# breakfast classes\napple\nbanana\n\n  waffle  \ndonut\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	labels, err := LoadLabels(file)
	require.NoError(t, err)

	require.Equal(t, []string{"apple", "banana", "waffle", "donut"}, labels)
}

func TestLoadLabelsMissingFile(t *testing.T) {

	_, err := LoadLabels(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
