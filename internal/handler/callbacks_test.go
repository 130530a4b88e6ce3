package handler

import (
	"errors"
	"testing"

	"englishbot/internal/session"
	"englishbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

// callbackContext records what a callback handler sends back. Only the
// methods the page handlers use are implemented; the embedded interface is
// nil, so anything else panics.
type callbackContext struct {
	tele.Context

	sender   *tele.User
	callback *tele.Callback
	editErr  error

	edits     []string
	sends     []string
	responses []*tele.CallbackResponse
}

func newCallbackContext(unique, data string) *callbackContext {
	return &callbackContext{
		sender:   &tele.User{ID: testUserID},
		callback: &tele.Callback{ID: "cb-1", Unique: unique, Data: data},
	}
}

func (c *callbackContext) Sender() *tele.User       { return c.sender }
func (c *callbackContext) Callback() *tele.Callback { return c.callback }

func (c *callbackContext) Edit(what interface{}, opts ...interface{}) error {
	if c.editErr != nil {
		return c.editErr
	}
	c.edits = append(c.edits, what.(string))
	return nil
}

func (c *callbackContext) Send(what interface{}, opts ...interface{}) error {
	c.sends = append(c.sends, what.(string))
	return nil
}

func (c *callbackContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) > 0 {
		c.responses = append(c.responses, resp[0])
	} else {
		c.responses = append(c.responses, nil)
	}
	return nil
}

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain unique", input: "page_next", expected: "page_next"},
		{name: "telebot unique prefix", input: "\fpage_prev", expected: "page_prev"},
		{name: "surrounding whitespace", input: "  page_next \n", expected: "page_next"},
		{name: "embedded control characters", input: "page\x00_next\x01", expected: "page_next"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanCallbackData(tt.input))
		})
	}
}

// pagedFixture holds 5 words, i.e. 3 pages of 2
func pagedFixture() *handlerFixture {
	f := newHandlerFixture()
	f.words.On("CountWords", mock.Anything, testUserID).Return(5, nil)
	f.words.On("ListWords", mock.Anything, testUserID, 2, 0).Return(testutil.NewTestWords(testUserID, 2), nil)
	f.words.On("ListWords", mock.Anything, testUserID, 2, 2).Return(testutil.NewTestWords(testUserID, 2), nil)
	f.words.On("ListWords", mock.Anything, testUserID, 2, 4).Return(testutil.NewTestWords(testUserID, 1), nil)
	return f
}

func TestHandlePage_EditsListInPlace(t *testing.T) {
	tests := []struct {
		name         string
		startPage    int
		next         bool
		expectedPage int
		expectedText string
	}{
		{name: "next", startPage: 0, next: true, expectedPage: 1, expectedText: "страница 2 из 3"},
		{name: "prev", startPage: 1, next: false, expectedPage: 0, expectedText: "страница 1 из 3"},
		{name: "next clamped at last page", startPage: 2, next: true, expectedPage: 2, expectedText: "страница 3 из 3"},
		{name: "prev clamped at first page", startPage: 0, next: false, expectedPage: 0, expectedText: "страница 1 из 3"},
		{name: "stale cursor clamped", startPage: 10, next: true, expectedPage: 2, expectedText: "страница 3 из 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := pagedFixture()
			f.sessions.Update(testUserID, func(s *session.Session) { s.Page = tt.startPage })

			c := newCallbackContext(btnNextPage.Unique, "")
			var err error
			if tt.next {
				err = f.handler.handleNextPage(c)
			} else {
				err = f.handler.handlePrevPage(c)
			}

			require.NoError(t, err)
			require.Len(t, c.edits, 1)
			assert.Contains(t, c.edits[0], tt.expectedText)
			assert.Empty(t, c.sends)
			assert.Len(t, c.responses, 1)
			assert.Equal(t, tt.expectedPage, f.sessions.Get(testUserID).Page)
		})
	}
}

func TestHandlePage_NotModifiedIsAcknowledged(t *testing.T) {
	f := pagedFixture()

	c := newCallbackContext(btnPrevPage.Unique, "")
	c.editErr = errors.New("telegram: Bad Request: message is not modified (400)")

	err := f.handler.handlePrevPage(c)

	require.NoError(t, err)
	assert.Empty(t, c.sends, "no new message for a double tap")
	assert.Len(t, c.responses, 1)
}

func TestHandlePage_EditFailureSendsNewMessage(t *testing.T) {
	f := pagedFixture()

	c := newCallbackContext(btnNextPage.Unique, "")
	c.editErr = errors.New("telegram: Bad Request: message to edit not found (400)")

	err := f.handler.handleNextPage(c)

	require.NoError(t, err)
	require.Len(t, c.sends, 1)
	assert.Contains(t, c.sends[0], "страница 2 из 3")
	assert.Len(t, c.responses, 1)
}

func TestHandlePage_EmptyDictionary(t *testing.T) {
	f := newHandlerFixture()
	f.words.On("CountWords", mock.Anything, testUserID).Return(0, nil)

	c := newCallbackContext(btnNextPage.Unique, "")

	require.NoError(t, f.handler.handleNextPage(c))
	assert.Empty(t, c.edits)
	require.Len(t, c.responses, 1)
	require.NotNil(t, c.responses[0])
	assert.Contains(t, c.responses[0].Text, "нет слов")
}

func TestHandleCallback_RoutesByData(t *testing.T) {
	f := pagedFixture()

	// Buttons without a Unique arrive with the key in Data
	c := newCallbackContext("", " page_next\n")

	require.NoError(t, f.handler.handleCallback(c))
	require.Len(t, c.edits, 1)
	assert.Contains(t, c.edits[0], "страница 2 из 3")
	assert.Equal(t, 1, f.sessions.Get(testUserID).Page)
}

func TestHandleCallback_UnknownIsAcknowledged(t *testing.T) {
	f := newHandlerFixture()

	c := newCallbackContext("", "day_2024-01-01")

	require.NoError(t, f.handler.handleCallback(c))
	assert.Empty(t, c.edits)
	assert.Len(t, c.responses, 1)
	f.words.AssertNotCalled(t, "CountWords", mock.Anything, mock.Anything)
}

func TestHandleCallback_NilCallback(t *testing.T) {
	f := newHandlerFixture()

	c := &callbackContext{sender: &tele.User{ID: testUserID}}

	assert.NoError(t, f.handler.handleCallback(c))
	assert.Empty(t, c.responses)
}
