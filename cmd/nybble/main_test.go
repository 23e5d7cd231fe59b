// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckClockFlags(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		ticks  int
		period time.Duration
		key    bool
		ok     bool
	}){
		{"enter", 0, 0, false, true},
		{"limit", 10, 0, false, true},
		{"period", 0, time.Second, false, true},
		{"period_limit", 10, time.Second, false, true},
		{"key", 0, 0, true, true},
		{"key_limit", 10, 0, true, false},
		{"key_period", 0, time.Second, true, false},
		{"key_period_limit", 10, time.Second, true, false},
		{"negative_ticks", -1, 0, false, false},
		{"negative_period", 0, -time.Second, false, false},
	}

	for _, entry := range table {
		err := checkClockFlags(entry.ticks, entry.period, entry.key)
		if entry.ok {
			assert.NoError(err, entry.name)
		} else {
			assert.Error(err, entry.name)
		}
	}
}

func TestDefinesFlag(t *testing.T) {
	assert := assert.New(t)

	d := defines{}
	assert.NoError(d.Set("A=1"))
	assert.NoError(d.Set("B="))
	assert.Error(d.Set("C"))
	assert.Error(d.Set("=2"))
	assert.Equal(defines{"A": "1", "B": ""}, d)
}
