package metrics

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// smiTimeout bounds the nvidia-smi invocation so a wedged driver cannot
// stall the render loop.
const smiTimeout = 2 * time.Second

var smiArgs = []string{
	"--query-gpu=utilization.gpu,memory.used,memory.total,temperature.gpu,name",
	"--format=csv,noheader,nounits",
}

// GPUInfo is a single device snapshot from nvidia-smi.
type GPUInfo struct {
	Name        string
	Util        float64 // percent
	MemUsedMiB  float64
	MemTotalMiB float64
	TempC       float64
}

// QueryNvidiaSMI runs nvidia-smi and parses its CSV output. A missing
// binary, timeout, or unparsable output all return nil: no GPU is a
// normal condition, not an error.
func QueryNvidiaSMI() *GPUInfo {
	ctx, cancel := context.WithTimeout(context.Background(), smiTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, "nvidia-smi", smiArgs...).Output()
	if err != nil {
		return nil
	}
	return ParseNvidiaSMI(string(out))
}

// ParseNvidiaSMI parses one line of nvidia-smi CSV output in the field
// order of smiArgs. Returns nil when the output does not describe a GPU.
func ParseNvidiaSMI(output string) *GPUInfo {
	output = strings.TrimSpace(output)
	if output == "" {
		return nil
	}
	// Error text from a driverless machine shows up on stdout too.
	lower := strings.ToLower(output)
	if strings.Contains(lower, "no devices") || strings.Contains(lower, "failed") ||
		strings.Contains(lower, "error") || strings.Contains(lower, "not found") {
		return nil
	}

	// Only the first device drives the tiles.
	line := output
	if i := strings.IndexByte(output, '\n'); i >= 0 {
		line = output[:i]
	}
	fields := strings.Split(line, ",")
	if len(fields) < 5 {
		return nil
	}

	info := &GPUInfo{
		Util:        smiFloat(fields[0]),
		MemUsedMiB:  smiFloat(fields[1]),
		MemTotalMiB: smiFloat(fields[2]),
		TempC:       smiFloat(fields[3]),
	}
	name := strings.TrimSpace(fields[4])
	name = strings.ReplaceAll(name, "NVIDIA ", "")
	name = strings.ReplaceAll(name, "GeForce ", "")
	info.Name = name
	return info
}

func smiFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "[N/A]" {
		return 0
	}
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
