package gitrepo

import (
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRemoteURL(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "https with git suffix",
			raw:      "https://github.com/huangsam/chlog.git",
			expected: "https://github.com/huangsam/chlog",
		},
		{
			name:     "https without suffix",
			raw:      "https://github.com/huangsam/chlog",
			expected: "https://github.com/huangsam/chlog",
		},
		{
			name:     "scp style ssh",
			raw:      "git@github.com:huangsam/chlog.git",
			expected: "https://github.com/huangsam/chlog",
		},
		{
			name:     "scp style gitlab",
			raw:      "git@gitlab.com:group/project.git",
			expected: "https://gitlab.com/group/project",
		},
		{
			name:     "ssh scheme",
			raw:      "ssh://git@github.com/huangsam/chlog.git",
			expected: "https://github.com/huangsam/chlog",
		},
		{
			name:     "trailing slash trimmed",
			raw:      "https://github.com/huangsam/chlog/",
			expected: "https://github.com/huangsam/chlog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeRemoteURL(tt.raw))
		})
	}
}

func TestIsRepository(t *testing.T) {
	dir := t.TempDir()
	inspector := NewInspector()

	assert.False(t, inspector.IsRepository(dir))

	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	assert.True(t, inspector.IsRepository(dir))
}

func TestLatestTagEmptyRepo(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	tag, err := NewInspector().LatestTag(dir)
	require.NoError(t, err)
	assert.Empty(t, tag)
}

func TestRemoteURLNoRemote(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	url, err := NewInspector().RemoteURL(dir)
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestRemoteURLNormalized(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = repo.CreateRemote(&config.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:huangsam/chlog.git"},
	})
	require.NoError(t, err)

	url, err := NewInspector().RemoteURL(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/huangsam/chlog", url)
}
