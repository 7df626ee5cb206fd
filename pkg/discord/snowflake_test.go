package discord

import (
	"testing"
	"time"
)

func TestSnowflakeTime(t *testing.T) {
	// Example snowflake from the Discord API documentation.
	got := SnowflakeTime("175928847299117063")
	want := time.UnixMilli(1462015105796)
	if !got.Equal(want) {
		t.Errorf("SnowflakeTime: want %v, got %v", want, got)
	}

	for _, bad := range []string{"", "abc", "-5"} {
		if got := SnowflakeTime(bad); !got.IsZero() {
			t.Errorf("SnowflakeTime(%q): want zero time, got %v", bad, got)
		}
	}
}
