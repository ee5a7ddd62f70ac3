// Package models defines the persisted shapes of the payments feature.
package models
