package criteria

import (
	"fmt"

	"github.com/da-luce/cvlint/internal/extract"
)

type fileSizeLimit struct {
	maxKB int
}

// NewFileSizeLimit creates the criterion that caps the file size in kilobytes.
func NewFileSizeLimit(maxKB int) Criterion {
	if maxKB <= 0 {
		maxKB = DefaultMaxFileSizeKB
	}
	return &fileSizeLimit{maxKB: maxKB}
}

func (c *fileSizeLimit) Name() string     { return "File Size Limit" }
func (c *fileSizeLimit) Category() string { return CategoryFormat }
func (c *fileSizeLimit) Weight() float64  { return 10 }

func (c *fileSizeLimit) Description() string {
	return fmt.Sprintf("File size is at most %dKB", c.maxKB)
}

func (c *fileSizeLimit) Evaluate(facts *extract.Facts) Result {
	sizeKB := float64(facts.ByteSize) / 1024
	if facts.ByteSize > int64(c.maxKB)*1024 {
		return Fail(fmt.Sprintf("file size is %.1fKB (limit %dKB)", sizeKB, c.maxKB))
	}
	return Pass(fmt.Sprintf("file size is %.1fKB", sizeKB))
}
