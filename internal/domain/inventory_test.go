package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoaderState(t *testing.T) {
	s := NewLoaderState()

	assert.True(t, s.Loading)
	assert.Nil(t, s.Error)
	assert.NotNil(t, s.Items)
	assert.Empty(t, s.Items)
}

func TestLoaderState_Clone(t *testing.T) {
	msg := "boom"
	s := LoaderState{
		Items: []InventoryItem{{ID: "1", Name: "Sword"}},
		Error: &msg,
	}

	c := s.Clone()
	c.Items[0].Name = "Axe"
	*c.Error = "changed"

	assert.Equal(t, "Sword", s.Items[0].Name)
	assert.Equal(t, "boom", s.ErrorMessage())
}

func TestLoaderState_JSONNullError(t *testing.T) {
	data, err := json.Marshal(LoaderState{Items: []InventoryItem{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"loading":false,"error":null}`, string(data))
}

func TestInventoryItem_OptionalFieldsRoundTrip(t *testing.T) {
	raw := `{"id":"1","type":"weapon","name":"Sword","imageUrl":"/img/sword.png","count":1}`

	var item InventoryItem
	require.NoError(t, json.Unmarshal([]byte(raw), &item))

	require.NotNil(t, item.Count)
	assert.Equal(t, 1, *item.Count)
	assert.Nil(t, item.Charges)
	assert.Nil(t, item.MaxCharges)
	assert.Nil(t, item.Cooldown)

	out, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestHTTPStatusError(t *testing.T) {
	err := fmt.Errorf("load: %w", &HTTPStatusError{StatusCode: 500})

	assert.True(t, errors.Is(err, ErrHTTPStatus))

	var statusErr *HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "HTTP error! status: 500", statusErr.Error())
}

type emptyError struct{}

func (emptyError) Error() string { return "" }

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, ErrMsgUnknownError, ErrorMessage(nil))
	assert.Equal(t, ErrMsgUnknownError, ErrorMessage(emptyError{}))
	assert.Equal(t, "dial tcp: refused", ErrorMessage(errors.New("dial tcp: refused")))
}

func TestLoadError(t *testing.T) {
	underlying := errors.New("connection refused")
	err := NewLoadError(ErrTransport, underlying)

	assert.Equal(t, "connection refused", err.Error())
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, underlying)
	assert.NotErrorIs(t, err, ErrDecode)

	assert.Equal(t, ErrMsgUnknownError, ErrorMessage(NewLoadError(ErrDecode, nil)))
}
