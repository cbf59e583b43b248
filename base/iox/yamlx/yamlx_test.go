// Copyright (c) 2025, The Navis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Seed  uint64  `yaml:"seed"`
	Name  string  `yaml:"name"`
	Ratio float64 `yaml:"ratio"`
}

func TestSaveOpen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.yaml")
	in := testStruct{Seed: 42, Name: "gaussian", Ratio: 0.75}
	require.NoError(t, Save(&in, file))

	var out testStruct
	require.NoError(t, Open(&out, file))
	assert.Equal(t, in, out)
}

func TestRead(t *testing.T) {
	out := testStruct{Name: "keep"}
	require.NoError(t, Read(&out, strings.NewReader("")))
	assert.Equal(t, "keep", out.Name)

	require.NoError(t, Read(&out, strings.NewReader("seed: 9\n")))
	assert.Equal(t, uint64(9), out.Seed)
	assert.Equal(t, "keep", out.Name)

	assert.Error(t, Read(&out, strings.NewReader("sede: 9\n")))

	require.NoError(t, ReadBytes(&out, []byte("ratio: 0.5\n")))
	assert.Equal(t, 0.5, out.Ratio)
}

func TestSaveErrors(t *testing.T) {
	in := testStruct{Seed: 1}
	assert.Error(t, Save(&in, filepath.Join(t.TempDir(), "missing", "test.yaml")))
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("no /dev/full")
	}
	// the buffered write only fails when flushed
	assert.Error(t, Save(&in, "/dev/full"))
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(testStruct{Seed: 7}, &buf))
	assert.Contains(t, buf.String(), "seed: 7")
}
