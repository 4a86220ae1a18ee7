package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// FakeContext is a tele.Context that records replies.
// Only the methods used by handlers are implemented, others panic.
type FakeContext struct {
	tele.Context

	User     *tele.User
	Input    string
	Cb       *tele.Callback
	Sent     []interface{}
	Options  [][]interface{}
	Answered int
}

// NewTextContext builds a context for a plain message or command
func NewTextContext(userID int64, text string) *FakeContext {
	return &FakeContext{
		User:  &tele.User{ID: userID, Username: "tester"},
		Input: text,
	}
}

// NewCallbackContext builds a context for an inline button press
func NewCallbackContext(userID int64, unique, data string) *FakeContext {
	return &FakeContext{
		User: &tele.User{ID: userID, Username: "tester"},
		Cb:   &tele.Callback{ID: "cb", Unique: unique, Data: data},
	}
}

func (c *FakeContext) Sender() *tele.User {
	return c.User
}

func (c *FakeContext) Text() string {
	return c.Input
}

func (c *FakeContext) Callback() *tele.Callback {
	return c.Cb
}

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	c.Sent = append(c.Sent, what)
	c.Options = append(c.Options, opts)
	return nil
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	c.Answered++
	return nil
}

// LastText returns the last sent text or empty string
func (c *FakeContext) LastText() string {
	if len(c.Sent) == 0 {
		return ""
	}
	s, _ := c.Sent[len(c.Sent)-1].(string)
	return s
}
