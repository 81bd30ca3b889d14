// ABOUTME: Tests for human-readable size and count formatters
// ABOUTME: Exact-multiple and fractional rendering at each unit boundary

package main

import "testing"

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name string
		size uint64
		want string
	}{
		{"zero", 0, "0"},
		{"plain bytes", 42, "42 B"},
		{"exact kilobyte", 1024, "1 KB"},
		{"fractional kilobytes", 1536, "1.50 KB"},
		{"exact megabyte", 1024 * 1024, "1 MB"},
		{"fractional megabytes", 1024*1024 + 512*1024, "1.50 MB"},
		{"exact gigabyte", 1024 * 1024 * 1024, "1 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatBytes(tt.size); got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.size, got, tt.want)
			}
		})
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		name string
		size uint64
		want string
	}{
		{"zero", 0, "0"},
		{"plain count", 999, "999B"},
		{"exact thousand", 2000, "2K"},
		{"fractional thousands", 1500, "1.5K"},
		{"fractional millions", 1048576, "1.0M"},
		{"exact million", 3000000, "3M"},
		{"fractional billions", 2500000000, "2.5G"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCount(tt.size); got != tt.want {
				t.Errorf("FormatCount(%d) = %q, want %q", tt.size, got, tt.want)
			}
		})
	}
}
