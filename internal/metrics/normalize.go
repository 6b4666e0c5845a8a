package metrics

import "fmt"

// Reference throughputs used to map I/O rates onto a 0-100 scale.
// 500 MiB/s covers a saturated SATA SSD with headroom for NVMe bursts;
// 125 MiB/s is gigabit line rate. Rates above the reference clamp at 100.
const (
	diskRefBytesPerSec = 500 * 1024 * 1024
	netRefBytesPerSec  = 125 * 1024 * 1024
)

// Clamp bounds a percentage to [0, 100].
func Clamp(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// CounterRate computes bytes/sec from two cumulative counter readings.
// A negative delta (counter reset or wraparound) yields 0, never a
// negative rate. Elapsed times at or below zero also yield 0.
func CounterRate(prev, curr uint64, elapsedSec float64) float64 {
	if curr < prev || elapsedSec <= 0 {
		return 0
	}
	return float64(curr-prev) / elapsedSec
}

// NormalizeRate maps a bytes/sec rate for id onto [0, 100] against the
// metric's reference throughput.
func NormalizeRate(id MetricID, bytesPerSec float64) float64 {
	ref := float64(netRefBytesPerSec)
	if id == MetricDiskRead || id == MetricDiskWrite {
		ref = diskRefBytesPerSec
	}
	return Clamp(bytesPerSec / ref * 100)
}

// FormatBytes renders a byte count with a binary-unit suffix.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}

// FormatRate renders a bytes/sec value the way the disk and net tiles
// display it.
func FormatRate(bytesPerSec float64) string {
	switch {
	case bytesPerSec < 1024:
		return fmt.Sprintf("%.0f B/s", bytesPerSec)
	case bytesPerSec < 1024*1024:
		return fmt.Sprintf("%.0f KB/s", bytesPerSec/1024)
	case bytesPerSec < 1024*1024*1024:
		return fmt.Sprintf("%.1f MB/s", bytesPerSec/(1024*1024))
	default:
		return fmt.Sprintf("%.1f GB/s", bytesPerSec/(1024*1024*1024))
	}
}
