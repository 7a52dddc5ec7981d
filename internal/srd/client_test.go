package srd

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newFakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/2014/skills", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":3,"results":[
			{"index":"athletics","name":"Athletics","url":"/api/2014/skills/athletics"},
			{"index":"sleight-of-hand","name":"Sleight of Hand","url":"/api/2014/skills/sleight-of-hand"},
			{"index":"stealth","name":"Stealth","url":"/api/2014/skills/stealth"}]}`))
	})
	mux.HandleFunc("/api/2014/skills/sleight-of-hand", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"index":"sleight-of-hand","name":"Sleight of Hand","ability_score":{"index":"dex"}}`))
	})
	mux.HandleFunc("/api/2014/skills/athletics", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"index":"athletics","name":"Athletics","ability_score":{"index":"str"}}`))
	})
	mux.HandleFunc("/api/2014/skills/stealth", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"index":"stealth","name":"Stealth","ability_score":{"index":"dex"}}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestFetchSkills(t *testing.T) {
	server := newFakeAPI(t)

	client := NewClient(t.TempDir(), false)
	client.SetBaseURL(server.URL)

	var seen []string
	skills, err := client.FetchSkills(func(name string) {
		seen = append(seen, name)
	})
	require.NoError(t, err)

	// Dashed API indexes come back keyed by their spoken form, matching
	// how check commands name skills.
	assert.Equal(t, map[string]string{"athletics": "str", "sleight of hand": "dex", "stealth": "dex"}, skills)
	assert.Equal(t, []string{"Athletics", "Sleight of Hand", "Stealth"}, seen)
}

func TestSaveSkillsRespectsExisting(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "skills.yaml")
	require.NoError(t, os.WriteFile(existing, []byte("custom: wis\n"), 0644))

	client := NewClient(dir, false)
	path, err := client.SaveSkills(map[string]string{"athletics": "str"})
	require.NoError(t, err)
	assert.Equal(t, existing, path)

	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "custom: wis\n", string(content))
}

func TestSaveSkillsForce(t *testing.T) {
	dir := t.TempDir()
	client := NewClient(dir, true)

	path, err := client.SaveSkills(map[string]string{"athletics": "str", "stealth": "dex"})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var loaded map[string]string
	require.NoError(t, yaml.NewDecoder(f).Decode(&loaded))
	assert.Equal(t, "dex", loaded["stealth"])
}
