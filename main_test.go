package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/damonallison/swift-fundamentals-sub000/internal/config"
	"github.com/damonallison/swift-fundamentals-sub000/pkg"
	"github.com/damonallison/swift-fundamentals-sub000/pkg/script"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestRun_Stdin(t *testing.T) {
	var out bytes.Buffer

	in := strings.NewReader(`{"initial":[1,2,3],"ops":[{"op":"total"},{"op":"pop"}]}`)

	err := run(context.Background(), config.Config{Workers: 1}, nil, in, &out)
	require.NoError(t, err)

	var reports []script.Report

	require.NoError(t, json.Unmarshal(out.Bytes(), &reports))
	require.Len(t, reports, 1)

	require.Equal(t, "stdin", reports[0].Name)
	require.Equal(t, 6, reports[0].Results[0].Value.MustGet())
	require.Equal(t, 3, reports[0].Results[1].Value.MustGet())
	require.Equal(t, []int{1, 2}, reports[0].Final)
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()

	programs := map[string]string{
		"a.json": `{"name":"a","ops":[{"op":"push","value":1},{"op":"push","value":2,"if":"linux"}]}`,
		"b.json": `{"version":"v1.2.0","initial":[5,6],"ops":[{"op":"suffix","size":1}]}`,
	}

	var args []string

	for _, name := range []string{"a.json", "b.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(programs[name]), 0o600))

		args = append(args, path)
	}

	var out bytes.Buffer

	err := run(context.Background(), config.Config{Workers: 2, Tags: []string{"linux"}}, args, nil, &out)
	require.NoError(t, err)

	var reports []script.Report

	require.NoError(t, json.Unmarshal(out.Bytes(), &reports))
	require.Len(t, reports, 2)

	require.Equal(t, "a", reports[0].Name)
	require.Equal(t, []int{1, 2}, reports[0].Final)

	require.Equal(t, args[1], reports[1].Name)
	require.Equal(t, []int{6}, reports[1].Results[0].Values)
}

func TestRun_Error(t *testing.T) {
	in := strings.NewReader(`{"ops":[{"op":"at","index":0}]}`)

	err := run(context.Background(), config.Config{Workers: 1}, nil, in, &bytes.Buffer{})
	require.ErrorIs(t, err, pkg.ErrOutOfRange)
}

func TestRun_ZeroWorkers(t *testing.T) {
	var out bytes.Buffer

	in := strings.NewReader(`{"ops":[{"op":"push","value":1}]}`)

	err := run(context.Background(), config.Config{}, nil, in, &out)
	require.NoError(t, err)

	var reports []script.Report

	require.NoError(t, json.Unmarshal(out.Bytes(), &reports))
	require.Equal(t, []int{1}, reports[0].Final)
}
