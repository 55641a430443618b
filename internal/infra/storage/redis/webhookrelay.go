package redis

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/paysim/internal/webhookrelay"
)

// webhookRelayKeyPrefix is the namespace prefix for all keys related to the
// webhook relay.
const webhookRelayKeyPrefix = "webhookrelay"

// webhookRelayDeadLetterKey is the Redis list holding every abandoned
// webhook event, oldest first. The format is:
//
//	"webhookrelay:deadletters"
const webhookRelayDeadLetterKey = webhookRelayKeyPrefix + ":deadletters"

// SaveDeadLetter appends an abandoned webhook event to the dead letter list.
//
// Dead letters are stored as JSON with no expiration so they can be
// inspected or replayed out of band after the process restarts.
//
// Parameters:
//   - ctx: context for timeout and cancellation.
//   - letter: the abandoned event together with its delivery metadata.
//
// Returns:
//   - An error if serialization or the Redis operation fails.
func (c *client) SaveDeadLetter(ctx context.Context, letter webhookrelay.DeadLetter) error {
	data, err := json.Marshal(letter)
	if err != nil {
		return err
	}

	return c.conn.RPush(ctx, webhookRelayDeadLetterKey, data).Err()
}

// Compile-time assertion to ensure client implements the DeadLetterStorage interface.
var _ webhookrelay.DeadLetterStorage = new(client)
