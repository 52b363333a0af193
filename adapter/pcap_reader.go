package adapter

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"github.com/ffang0224/project-computer-networks/domain"
)

// PcapTraceRepository derives a capacity trace from a packet capture: one
// event per packet, stamped with the milliseconds elapsed since the first
// packet of the capture.
type PcapTraceRepository struct {
	filename   string
	minPayload int
}

// NewPcapTraceRepository counts only packets whose TCP or UDP payload holds
// at least minPayload bytes. Zero counts every packet.
func NewPcapTraceRepository(filename string, minPayload int) *PcapTraceRepository {
	return &PcapTraceRepository{filename: filename, minPayload: minPayload}
}

// IsCaptureFile reports whether path names a pcap or pcapng file.
func IsCaptureFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pcap", ".pcapng":
		return true
	}
	return false
}

type captureReader interface {
	gopacket.PacketDataSource
	LinkType() layers.LinkType
}

func newCaptureReader(r io.Reader, filename string) (captureReader, error) {
	if strings.EqualFold(filepath.Ext(filename), ".pcapng") {
		return pcapgo.NewNgReader(r, pcapgo.DefaultNgReaderOptions)
	}
	return pcapgo.NewReader(r)
}

func (r *PcapTraceRepository) LoadEvents() ([]domain.TraceEvent, error) {
	file, err := openInput(r.filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader, err := newCaptureReader(file, r.filename)
	if err != nil {
		return nil, &LoadError{Path: r.filename, Err: err}
	}
	source := gopacket.NewPacketSource(reader, reader.LinkType())
	source.Lazy = true
	source.NoCopy = true

	var (
		events  []domain.TraceEvent
		base    time.Time
		started bool
	)
	for {
		packet, err := source.NextPacket()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Path: r.filename, Err: err}
		}

		ts := packet.Metadata().Timestamp
		if !started {
			base = ts
			started = true
		}
		if r.minPayload > 0 && payloadLen(packet) < r.minPayload {
			continue
		}
		events = append(events, domain.TraceEvent(ts.Sub(base).Milliseconds()))
	}
	return events, nil
}

func payloadLen(packet gopacket.Packet) int {
	if tcp, ok := packet.Layer(layers.LayerTypeTCP).(*layers.TCP); ok {
		return len(tcp.Payload)
	}
	if udp, ok := packet.Layer(layers.LayerTypeUDP).(*layers.UDP); ok {
		return len(udp.Payload)
	}
	return 0
}
