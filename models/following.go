package models

import (
	"time"

	"github.com/google/uuid"
)

// Following is a directed edge: Follower watches Author's content.
type Following struct {
	Author    uuid.UUID
	Follower  uuid.UUID
	CreatedAt time.Time
}

// FollowDirection selects which side of the edge is listed.
type FollowDirection int

const (
	// Followers lists users following the target user.
	Followers FollowDirection = iota
	// Followings lists users the target user follows.
	Followings
)

// Page is a limit/offset window. Limit == 0 means "no limit".
type Page struct {
	Limit  uint64
	Offset uint64
}

// FollowList is a page of users with the total count of the list.
type FollowList struct {
	Count    int                `json:"count"`
	Next     *string            `json:"next"`
	Previous *string            `json:"previous"`
	Results  []ShortUserProfile `json:"results"`
}
