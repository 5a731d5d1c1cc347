/*
 * load_test.go, part of potentials.
 *
 * Copyright 2023 The potentials developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package eam

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadByStyle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, buildTestEAM(t).Build(&buf, "", 0))
	p, err := Load(&buf, "eam")
	require.NoError(t, err)
	assert.Equal(t, "eam", p.PairStyle())

	buf.Reset()
	require.NoError(t, buildTestAlloy(t).Build(&buf, "", 0))
	p, err = Load(&buf, "alloy")
	require.NoError(t, err)
	assert.Equal(t, "eam/alloy", p.PairStyle())

	_, err = Load(strings.NewReader(""), "banana")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown pair style")
}

func TestLoadSniffing(t *testing.T) {
	cases := []struct {
		style string
		build func(*bytes.Buffer) error
	}{
		{"eam", func(b *bytes.Buffer) error { return buildTestEAM(t).Build(b, "", 0) }},
		{"eam/alloy", func(b *bytes.Buffer) error { return buildTestAlloy(t).Build(b, "", 0) }},
		{"eam/fs", func(b *bytes.Buffer) error { return buildTestFS(t).Build(b, "", 0) }},
		{"adp", func(b *bytes.Buffer) error { return buildTestADP(t).Build(b, "", 0) }},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		require.NoError(t, c.build(&buf))
		p, err := Load(&buf, "")
		require.NoError(t, err, c.style)
		assert.Equal(t, c.style, p.PairStyle())
	}

	_, err := Load(strings.NewReader("not a parameter file\nat all\n"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), UnknownStyle)
}

func TestLoadFileCompressed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, buildTestEAM(t).Build(&buf, "", 0))
	dir := t.TempDir()

	plain := filepath.Join(dir, "Cu.eam")
	require.NoError(t, os.WriteFile(plain, buf.Bytes(), 0644))

	gzName := filepath.Join(dir, "Cu.eam.gz")
	f, err := os.Create(gzName)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write(buf.Bytes())
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	zstName := filepath.Join(dir, "Cu.eam.zst")
	f, err = os.Create(zstName)
	require.NoError(t, err)
	enc, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = enc.Write(buf.Bytes())
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	for _, filename := range []string{plain, gzName, zstName} {
		p, err := LoadFile(filename, "eam")
		require.NoError(t, err, filename)
		e, ok := p.(*EAM)
		require.True(t, ok)
		assert.Equal(t, "Cu test potential", e.Header())
	}

	_, err = LoadFile(filepath.Join(dir, "missing.eam"), "eam")
	assert.Error(t, err)
}
