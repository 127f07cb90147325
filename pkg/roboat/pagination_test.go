package roboat

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLimit_Validate(t *testing.T) {
	for _, limit := range []Limit{Limit10, Limit25, Limit50, Limit100} {
		assert.NoError(t, limit.Validate(), "limit %d", limit)
	}

	for _, limit := range []Limit{0, 1, 20, 30, 99, 101, -10} {
		err := limit.Validate()
		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr), "limit %d", limit)
		assert.Equal(t, int(limit), validationErr.Value)
	}
}

func TestLimit_String(t *testing.T) {
	assert.Equal(t, "50", Limit50.String())
}

func TestPagedResponse_NextCursor(t *testing.T) {
	next := "abc"
	empty := ""

	assert.Equal(t, "", (&pagedResponse[int]{}).nextCursor())
	assert.Equal(t, "", (&pagedResponse[int]{NextPageCursor: &empty}).nextCursor())
	assert.Equal(t, "abc", (&pagedResponse[int]{NextPageCursor: &next}).nextCursor())
}

// pageScript serves canned pages keyed by the requested cursor
type pageScript struct {
	pages     map[string]*Page[int]
	requested []string
	failOnce  map[string]bool
}

func (s *pageScript) fetch(ctx context.Context, cursor string) (*Page[int], error) {
	s.requested = append(s.requested, cursor)
	if s.failOnce[cursor] {
		delete(s.failOnce, cursor)
		return nil, ErrServerError
	}
	return s.pages[cursor], nil
}

func TestPager_Collect(t *testing.T) {
	script := &pageScript{pages: map[string]*Page[int]{
		"":   {Items: []int{1, 2}, NextCursor: "c1"},
		"c1": {Items: []int{}, NextCursor: "c2"},
		"c2": {Items: []int{3}},
	}}

	pager := NewPager(script.fetch)
	items, err := pager.Collect(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, items)
	assert.Equal(t, []string{"", "c1", "c2"}, script.requested)
	assert.True(t, pager.Done())
}

func TestPager_EmptyPageWithCursorIsNotFinal(t *testing.T) {
	script := &pageScript{pages: map[string]*Page[int]{
		"":     {NextCursor: "more"},
		"more": {Items: []int{7}},
	}}

	pager := NewPager(script.fetch)

	items, err := pager.Next(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.False(t, pager.Done())
	assert.Equal(t, "more", pager.Cursor())

	items, err = pager.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{7}, items)
	assert.True(t, pager.Done())

	items, err = pager.Next(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, items)
	assert.Len(t, script.requested, 2)
}

func TestPager_ErrorKeepsCursor(t *testing.T) {
	script := &pageScript{
		pages: map[string]*Page[int]{
			"":   {Items: []int{1}, NextCursor: "c1"},
			"c1": {Items: []int{2}},
		},
		failOnce: map[string]bool{"c1": true},
	}

	pager := NewPager(script.fetch)
	items, err := pager.Collect(context.Background())

	assert.True(t, errors.Is(err, ErrServerError))
	assert.Equal(t, []int{1}, items)
	assert.Equal(t, "c1", pager.Cursor())
	assert.False(t, pager.Done())

	rest, err := pager.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2}, rest)
	assert.Equal(t, []string{"", "c1", "c1"}, script.requested)
}

func cursorIs(cursor string) interface{} {
	return mock.MatchedBy(func(req *Request) bool {
		u, err := url.Parse(req.URL)
		return err == nil && u.Query().Get("cursor") == cursor
	})
}

func TestPager_WithResellers(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport, testCredential)

	mockTransport.On("Send", mock.Anything, cursorIs("")).
		Return(jsonResponse(200, `{"nextPageCursor": "p2", "data": [{"userAssetId": 1, "seller": {"id": 1, "name": "a"}, "price": 10}]}`), nil).Once()
	mockTransport.On("Send", mock.Anything, cursorIs("p2")).
		Return(jsonResponse(200, `{"nextPageCursor": null, "data": [{"userAssetId": 2, "seller": {"id": 2, "name": "b"}, "price": 20}]}`), nil).Once()

	pager := NewPager(func(ctx context.Context, cursor string) (*Page[Listing], error) {
		return client.Economy.Resellers(ctx, 1365767, Limit10, cursor)
	})
	listings, err := pager.Collect(context.Background())

	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, uint64(1), listings[0].UAID)
	assert.Equal(t, uint64(2), listings[1].UAID)
	mockTransport.AssertExpectations(t)
}
