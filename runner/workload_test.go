// Copyright 2026 The UniqSeq Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleWorkload = `
seed: 42
validate: true
strategies: [qpr, bitmap]
bands:
  - name: small
    start: 0.01
    end: 0.1
    step: 0.01
universes:
  - size: 1000
  - size: 100000
    bands: [small]
    strategies: [qpr]
`

func writeWorkload(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workload.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	wl, err := Load(writeWorkload(t, sampleWorkload))
	require.NoError(t, err)

	assert.EqualValues(t, 42, wl.Seed)
	assert.True(t, wl.Validate)
	assert.Equal(t, []string{"qpr", "bitmap"}, wl.Strategies)
	require.Len(t, wl.Bands, 1)
	assert.Equal(t, "small", wl.Bands[0].Name)
	require.Len(t, wl.Universes, 2)
	assert.EqualValues(t, 100000, wl.Universes[1].Size)
	assert.Equal(t, []string{"qpr"}, wl.Universes[1].Strategies)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown strategy": `
strategies: [quantum]
bands: [{name: small, start: 0.1, end: 0.2, step: 0.1}]
universes: [{size: 10}]
`,
		"bad band fractions": `
strategies: [qpr]
bands: [{name: small, start: 0.5, end: 0.2, step: 0.1}]
universes: [{size: 10}]
`,
		"zero universe": `
strategies: [qpr]
bands: [{name: small, start: 0.1, end: 0.2, step: 0.1}]
universes: [{size: 0}]
`,
		"unknown band reference": `
strategies: [qpr]
bands: [{name: small, start: 0.1, end: 0.2, step: 0.1}]
universes: [{size: 10, bands: [huge]}]
`,
		"no strategies anywhere": `
bands: [{name: small, start: 0.1, end: 0.2, step: 0.1}]
universes: [{size: 10}]
`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeWorkload(t, content))
			require.Error(t, err)
		})
	}
}

func TestDefaultWorkload_IsValid(t *testing.T) {
	require.NoError(t, DefaultWorkload().validate())
}
