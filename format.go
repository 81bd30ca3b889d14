// ABOUTME: Human-readable formatters for byte sizes and big counters
// ABOUTME: Used by the startup banner and the final run summary

package main

import "fmt"

const exbibyte = 1024 * 1024 * 1024 * 1024 * 1024 * 1024

const exacount = 1000 * 1000 * 1000 * 1000 * 1000 * 1000

var sizeNames = [...]string{"EB", "PB", "TB", "GB", "MB", "KB", "B"}

var countNames = [...]byte{'E', 'P', 'T', 'G', 'M', 'K', 'B'}

// FormatBytes renders a byte size in its largest applicable unit, e.g.
// 1048576 becomes "1 MB" and 1572864 becomes "1.50 MB".
func FormatBytes(size uint64) string {
	mult := uint64(exbibyte)

	for i := 0; i < len(sizeNames); i, mult = i+1, mult/1024 {
		if size < mult {
			continue
		}

		if size%mult == 0 {
			return fmt.Sprintf("%d %s", size/mult, sizeNames[i])
		}

		return fmt.Sprintf("%.2f %s", float64(size)/float64(mult), sizeNames[i])
	}

	return "0"
}

// FormatCount renders a counter value compactly, e.g. 1048576 becomes
// "1.0M" and 2000 becomes "2K".
func FormatCount(size uint64) string {
	mult := uint64(exacount)

	for i := 0; i < len(countNames); i, mult = i+1, mult/1000 {
		if size < mult {
			continue
		}

		if size%mult == 0 {
			return fmt.Sprintf("%d%c", size/mult, countNames[i])
		}

		return fmt.Sprintf("%.1f%c", float64(size)/float64(mult), countNames[i])
	}

	return "0"
}
