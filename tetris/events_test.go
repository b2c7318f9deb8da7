package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventsCoalesceBoardUpdates(t *testing.T) {
	e := newEvents(8)
	e.Push(Event{Kind: EventBoardUpdated})
	e.Push(Event{Kind: EventBoardUpdated})
	e.Push(Event{Kind: EventScoreChanged, Delta: 2})
	e.Push(Event{Kind: EventBoardUpdated})

	assert.Equal(t, []Event{
		{Kind: EventBoardUpdated},
		{Kind: EventScoreChanged, Delta: 2},
		{Kind: EventBoardUpdated},
	}, e.Drain())
	assert.Nil(t, e.Drain())
	assert.Equal(t, 0, e.Len())
}

func TestEventsDropOldestWhenFull(t *testing.T) {
	e := newEvents(2)
	e.Push(Event{Kind: EventScoreChanged, Delta: 1})
	e.Push(Event{Kind: EventScoreChanged, Delta: 2})
	e.Push(Event{Kind: EventScoreChanged, Delta: 3})

	assert.Equal(t, 2, e.Len())
	assert.Equal(t, uint64(1), e.Dropped())
	assert.Equal(t, []Event{
		{Kind: EventScoreChanged, Delta: 2},
		{Kind: EventScoreChanged, Delta: 3},
	}, e.Drain())
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "BoardUpdated", EventBoardUpdated.String())
	assert.Equal(t, "ScoreChanged", EventScoreChanged.String())
	assert.Equal(t, "GameOver", EventGameOver.String())
}
