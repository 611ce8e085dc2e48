package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// PopularClassesKey returns the cache key for the popular-classes listing.
func (r *CacheKeyStruct) PopularClassesKey() string {
	return "classes:popular"
}

// PopularInstructorsKey returns the cache key for the popular-instructors listing.
func (r *CacheKeyStruct) PopularInstructorsKey() string {
	return "instructors:popular"
}

// ClassSeatsChannel returns the Redis PubSub channel for a class's live seat count.
func (r *CacheKeyStruct) ClassSeatsChannel(classID int64) string {
	return fmt.Sprintf("class:%d:seats", classID)
}

var CacheKey = NewCacheKeyStruct()
