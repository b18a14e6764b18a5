package documents_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetforge/sheet-api/internal/documents"
	"github.com/sheetforge/sheet-api/internal/errors"
)

func TestFileFetcher_Fetch(t *testing.T) {
	fsys := fstest.MapFS{
		"attributes.json": {Data: []byte(`{"title":"Attributes","attributes":[]}`)},
	}
	fetcher, err := documents.NewFileFetcher(fsys)
	require.NoError(t, err)

	data, err := fetcher.Fetch(context.Background(), documents.NameAttributes)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Attributes")
}

func TestFileFetcher_NotFound(t *testing.T) {
	fetcher, err := documents.NewFileFetcher(fstest.MapFS{})
	require.NoError(t, err)

	_, err = fetcher.Fetch(context.Background(), documents.NameEnums)
	assert.True(t, errors.IsNotFound(err))
}

func TestFileFetcher_EmptyName(t *testing.T) {
	fetcher, err := documents.NewFileFetcher(fstest.MapFS{})
	require.NoError(t, err)

	_, err = fetcher.Fetch(context.Background(), "")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewFileFetcher_NilFS(t *testing.T) {
	_, err := documents.NewFileFetcher(nil)
	assert.Error(t, err)
}
