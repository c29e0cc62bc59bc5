package automaton

import (
	"fmt"

	"google.golang.org/protobuf/proto"

	pb "github.com/dep2p/go-hive/pkg/lib/proto/automaton"
)

type encodedSection struct {
	name string
	data []byte
}

// encodeSnapshot 编码为 pb.Snapshot
func encodeSnapshot(seq int64, sections []encodedSection) ([]byte, error) {
	snap := &pb.Snapshot{
		Sequence: seq,
		Sections: make([]*pb.Section, 0, len(sections)),
	}
	for _, s := range sections {
		snap.Sections = append(snap.Sections, &pb.Section{Name: s.name, Data: s.data})
	}
	return proto.Marshal(snap)
}

func decodeSnapshot(b []byte) (int64, []encodedSection, error) {
	var snap pb.Snapshot
	if err := proto.Unmarshal(b, &snap); err != nil {
		return 0, nil, fmt.Errorf("automaton: malformed snapshot: %w", err)
	}

	sections := make([]encodedSection, 0, len(snap.GetSections()))
	for _, s := range snap.GetSections() {
		sections = append(sections, encodedSection{name: s.GetName(), data: s.GetData()})
	}
	return snap.GetSequence(), sections, nil
}
