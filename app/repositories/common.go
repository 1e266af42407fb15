package repositories

import (
	"encoding/json"
	"fmt"
)

const (
	// Key prefixes for different entity types
	ItemKeyPrefix    = "item:"
	CommentKeyPrefix = "comment:"
	LikeKeyPrefix    = "like:"
	GuestKeyPrefix   = "guest:"
)

// itemKey builds the storage key for a portfolio item
func itemKey(itemID string) []byte {
	return []byte(ItemKeyPrefix + itemID)
}

// commentKey builds the storage key for a comment. The item ID is part of
// the key so that listing an item's comments is a prefix scan.
func commentKey(itemID, commentID string) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", CommentKeyPrefix, itemID, commentID))
}

// likeKey builds the storage key for one visitor's like on a comment
func likeKey(commentID, visitorID string) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", LikeKeyPrefix, commentID, visitorID))
}

// guestKey builds the storage key for a guestbook entry
func guestKey(entryID string) []byte {
	return []byte(GuestKeyPrefix + entryID)
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return nil
}
