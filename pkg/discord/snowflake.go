package discord

import (
	"strconv"
	"time"
)

// Discord epoch: first second of 2015, in milliseconds.
const discordEpoch = 1420070400000

// SnowflakeTime extracts the creation time encoded in a Discord snowflake ID.
// It returns the zero time for anything that is not a valid snowflake.
func SnowflakeTime(id string) time.Time {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(int64(n>>22) + discordEpoch)
}
