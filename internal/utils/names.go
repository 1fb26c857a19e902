// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DatePartitionLayout formats the per-day directory of stored uploads.
const DatePartitionLayout = "20060102"

// NameGenerator produces collision-resistant file names of the form
// "<unix milliseconds>-<random hex><ext>". The random part comes from a
// version 4 UUID, so two names generated within the same millisecond still
// differ.
type NameGenerator struct {
	now func() time.Time
}

// NewNameGenerator returns a generator using the wall clock.
func NewNameGenerator() *NameGenerator {
	return &NameGenerator{now: time.Now}
}

// NewNameGeneratorWithClock returns a generator reading time from now.
func NewNameGeneratorWithClock(now func() time.Time) *NameGenerator {
	return &NameGenerator{now: now}
}

// Generate returns the date partition ("YYYYMMDD") and a fresh file name
// ending in ext.
func (g *NameGenerator) Generate(ext string) (partition, name string) {
	now := g.now()

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	name = strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix + ext

	return now.Format(DatePartitionLayout), name
}
