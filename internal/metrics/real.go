package metrics

import (
	"fmt"
	"strings"
	"time"

	"github.com/mindprince/gonvml"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
)

// RealProvider samples live host metrics via gopsutil and GPU metrics via
// NVML, falling back to nvidia-smi when NVML cannot initialize.
type RealProvider struct {
	hasNVML   bool
	triedSMI  bool
	hasSMI    bool
	smiQuery  func() *GPUInfo // stubbed in tests; nil means QueryNvidiaSMI
	lastDisk  diskCounters
	lastNet   netCounters
	lastTime  time.Time
	firstTick bool
}

type diskCounters struct {
	readBytes  uint64
	writeBytes uint64
}

type netCounters struct {
	bytesRecv uint64
	bytesSent uint64
}

func (r *RealProvider) Init() error {
	if err := gonvml.Initialize(); err != nil {
		log.Debug().Err(err).Msg("NVML unavailable, will try nvidia-smi")
		r.hasNVML = false
	} else {
		r.hasNVML = true
	}

	// Prime the CPU usage counters so the first snapshot has a delta to
	// work with.
	_, _ = cpu.Percent(0, false)

	r.lastTime = time.Now()
	r.firstTick = true
	return nil
}

func (r *RealProvider) Snapshot() (*Snapshot, error) {
	now := time.Now()
	elapsed := now.Sub(r.lastTime).Seconds()
	if elapsed < 0.1 {
		elapsed = 0.1
	}

	snap := &Snapshot{
		Timestamp: now,
		Values:    make(map[MetricID]Value, len(AllMetrics)),
	}

	r.sampleCPU(snap)
	r.sampleMemory(snap)
	r.sampleDisk(snap, elapsed)
	r.sampleNet(snap, elapsed)
	r.sampleGPU(snap)

	r.lastTime = now
	r.firstTick = false
	return snap, nil
}

func (r *RealProvider) Shutdown() {
	if r.hasNVML {
		_ = gonvml.Shutdown()
	}
}

func (r *RealProvider) sampleCPU(snap *Snapshot) {
	pct, err := cpu.Percent(0, false)
	if err != nil || len(pct) == 0 {
		snap.Values[MetricCPU] = Value{}
		return
	}
	detail := ""
	if freqs, err := cpu.Info(); err == nil && len(freqs) > 0 && freqs[0].Mhz > 0 {
		detail = fmt.Sprintf("%.0fMHz", freqs[0].Mhz)
	}
	snap.Values[MetricCPU] = Value{
		Raw:        pct[0],
		Normalized: Clamp(pct[0]),
		Detail:     detail,
	}
}

func (r *RealProvider) sampleMemory(snap *Snapshot) {
	if vm, err := mem.VirtualMemory(); err == nil {
		snap.Values[MetricRAM] = Value{
			Raw:        vm.UsedPercent,
			Normalized: Clamp(vm.UsedPercent),
			Detail: fmt.Sprintf("%.1f/%.0fG",
				float64(vm.Used)/(1<<30), float64(vm.Total)/(1<<30)),
		}
	} else {
		snap.Values[MetricRAM] = Value{}
	}
	if sw, err := mem.SwapMemory(); err == nil {
		snap.Values[MetricSwap] = Value{
			Raw:        sw.UsedPercent,
			Normalized: Clamp(sw.UsedPercent),
			Detail: fmt.Sprintf("%.1f/%.0fG",
				float64(sw.Used)/(1<<30), float64(sw.Total)/(1<<30)),
		}
	} else {
		snap.Values[MetricSwap] = Value{}
	}
}

func (r *RealProvider) sampleDisk(snap *Snapshot, elapsed float64) {
	counters, err := disk.IOCounters()
	if err != nil {
		snap.Values[MetricDiskRead] = Value{}
		snap.Values[MetricDiskWrite] = Value{}
		return
	}
	var cur diskCounters
	for name, c := range counters {
		if strings.HasPrefix(name, "loop") {
			continue
		}
		cur.readBytes += c.ReadBytes
		cur.writeBytes += c.WriteBytes
	}

	var readRate, writeRate float64
	if !r.firstTick {
		readRate = CounterRate(r.lastDisk.readBytes, cur.readBytes, elapsed)
		writeRate = CounterRate(r.lastDisk.writeBytes, cur.writeBytes, elapsed)
	}
	r.lastDisk = cur

	snap.Values[MetricDiskRead] = Value{
		Raw:        readRate,
		Normalized: NormalizeRate(MetricDiskRead, readRate),
		Detail:     FormatRate(readRate),
	}
	snap.Values[MetricDiskWrite] = Value{
		Raw:        writeRate,
		Normalized: NormalizeRate(MetricDiskWrite, writeRate),
		Detail:     FormatRate(writeRate),
	}
}

func (r *RealProvider) sampleNet(snap *Snapshot, elapsed float64) {
	counters, err := net.IOCounters(false)
	if err != nil || len(counters) == 0 {
		snap.Values[MetricNetRx] = Value{}
		snap.Values[MetricNetTx] = Value{}
		return
	}
	cur := netCounters{
		bytesRecv: counters[0].BytesRecv,
		bytesSent: counters[0].BytesSent,
	}

	var rxRate, txRate float64
	if !r.firstTick {
		rxRate = CounterRate(r.lastNet.bytesRecv, cur.bytesRecv, elapsed)
		txRate = CounterRate(r.lastNet.bytesSent, cur.bytesSent, elapsed)
	}
	r.lastNet = cur

	snap.Values[MetricNetRx] = Value{
		Raw:        rxRate,
		Normalized: NormalizeRate(MetricNetRx, rxRate),
		Detail:     FormatRate(rxRate),
	}
	snap.Values[MetricNetTx] = Value{
		Raw:        txRate,
		Normalized: NormalizeRate(MetricNetTx, txRate),
		Detail:     FormatRate(txRate),
	}
}

func (r *RealProvider) sampleGPU(snap *Snapshot) {
	if r.hasNVML {
		if r.sampleNVML(snap) {
			return
		}
	}
	// The external query is slow, so probe once and reuse the result.
	if !r.triedSMI {
		r.triedSMI = true
		info := r.querySMI()
		r.hasSMI = info != nil
		if info != nil {
			r.fillGPU(snap, info)
			return
		}
		log.Info().Msg("no GPU found, GPU tiles will read zero")
	} else if r.hasSMI {
		if info := r.querySMI(); info != nil {
			r.fillGPU(snap, info)
			return
		}
	}
	r.fillNoGPU(snap)
}

func (r *RealProvider) querySMI() *GPUInfo {
	if r.smiQuery != nil {
		return r.smiQuery()
	}
	return QueryNvidiaSMI()
}

func (r *RealProvider) sampleNVML(snap *Snapshot) bool {
	count, err := gonvml.DeviceCount()
	if err != nil || count == 0 {
		return false
	}
	dev, err := gonvml.DeviceHandleByIndex(0)
	if err != nil {
		return false
	}
	name, _ := dev.Name()
	util, _, _ := dev.UtilizationRates()
	total, used, _ := dev.MemoryInfo()
	temp, _ := dev.Temperature()

	info := &GPUInfo{
		Name:        strings.TrimPrefix(name, "NVIDIA "),
		Util:        float64(util),
		MemUsedMiB:  float64(used) / (1 << 20),
		MemTotalMiB: float64(total) / (1 << 20),
		TempC:       float64(temp),
	}
	r.fillGPU(snap, info)
	return true
}

func (r *RealProvider) fillGPU(snap *Snapshot, info *GPUInfo) {
	snap.GPUName = info.Name
	snap.Values[MetricGPU] = Value{
		Raw:        info.Util,
		Normalized: Clamp(info.Util),
		Detail:     info.Name,
	}
	vramPct := 0.0
	if info.MemTotalMiB > 0 {
		vramPct = info.MemUsedMiB / info.MemTotalMiB * 100
	}
	snap.Values[MetricVRAM] = Value{
		Raw:        vramPct,
		Normalized: Clamp(vramPct),
		Detail:     fmt.Sprintf("%.0f/%.0fM", info.MemUsedMiB, info.MemTotalMiB),
	}
	snap.Values[MetricTemp] = Value{
		Raw:        info.TempC,
		Normalized: Clamp(info.TempC),
		Detail:     "GPU",
	}
}

// fillNoGPU zeroes the GPU tiles but tries host sensors for the temp
// tile so machines without discrete graphics still show something.
func (r *RealProvider) fillNoGPU(snap *Snapshot) {
	snap.Values[MetricGPU] = Value{Detail: "N/A"}
	snap.Values[MetricVRAM] = Value{Detail: "N/A"}

	temps, err := host.SensorsTemperatures()
	if err == nil {
		var hottest float64
		for _, t := range temps {
			if strings.HasPrefix(strings.ToLower(t.SensorKey), "core") && t.Temperature > hottest {
				hottest = t.Temperature
			}
		}
		if hottest > 0 {
			snap.Values[MetricTemp] = Value{
				Raw:        hottest,
				Normalized: Clamp(hottest),
				Detail:     "CPU",
			}
			return
		}
	}
	snap.Values[MetricTemp] = Value{Detail: "N/A"}
}
