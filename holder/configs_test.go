package holder_test

import (
	"errors"
	"testing"

	"github.com/tailored-agentic-units/vehiclenet/alloc"
	"github.com/tailored-agentic-units/vehiclenet/holder"
	"github.com/tailored-agentic-units/vehiclenet/propconfig"
	"github.com/tailored-agentic-units/vehiclenet/value"
)

func testConfigs() []propconfig.PropertyConfig {
	return []propconfig.PropertyConfig{
		{Prop: 0x100, ValueType: value.TypeString, Access: propconfig.AccessRead, ChangeMode: propconfig.ChangeStatic},
		{Prop: 0x200, ValueType: value.TypeFloat, Access: propconfig.AccessRead, ChangeMode: propconfig.ChangeContinuous, MaxSampleRate: 10},
		{Prop: 0x300, ValueType: value.TypeInt32, Access: propconfig.AccessReadWrite, ChangeMode: propconfig.ChangeOnChange},
	}
}

func TestConfigList_OwningDestruction(t *testing.T) {
	a := alloc.NewTracker(&alloc.Config{})
	l := holder.NewConfigList(a, holder.Owning)

	for i, c := range testConfigs() {
		if i != 2 {
			if err := c.SetConfigString(a, "cfg"); err != nil {
				t.Fatalf("SetConfigString() error = %v", err)
			}
		}
		if err := l.AppendClone(&c); err != nil {
			t.Fatalf("AppendClone() error = %v", err)
		}
		propconfig.DeleteMembers(a, &c)
	}

	stats := a.Stats()
	if stats.LiveRecords != 3 || stats.LiveBuffers != 2 {
		t.Fatalf("Stats() = %+v, want 3 records and 2 buffers", stats)
	}

	if err := l.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if a.Stats().Leaked() {
		t.Errorf("Stats() = %+v, want nothing live", a.Stats())
	}
}

func TestConfigList_BorrowingLeavesElements(t *testing.T) {
	a := alloc.NewTracker(&alloc.Config{})
	configs := testConfigs()

	items := make([]*propconfig.PropertyConfig, 0, len(configs))
	for i := range configs {
		if err := configs[i].SetConfigString(a, "borrowed"); err != nil {
			t.Fatalf("SetConfigString() error = %v", err)
		}
		items = append(items, &configs[i])
	}

	l := holder.WrapConfigList(a, holder.Borrowing, items)
	if err := l.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}

	for i := range configs {
		if configs[i].ConfigString() != "borrowed" {
			t.Errorf("config %d string = %q, want %q", i, configs[i].ConfigString(), "borrowed")
		}
		if err := propconfig.DeleteMembers(a, &configs[i]); err != nil {
			t.Errorf("DeleteMembers() error = %v", err)
		}
	}
	if a.Stats().Leaked() {
		t.Errorf("Stats() = %+v, want nothing live", a.Stats())
	}
}

func TestConfigList_Find(t *testing.T) {
	a := alloc.NewTracker(&alloc.Config{})
	l := holder.NewConfigList(a, holder.Owning)
	defer l.Release()

	for _, c := range testConfigs() {
		if err := l.AppendClone(&c); err != nil {
			t.Fatalf("AppendClone() error = %v", err)
		}
	}

	c, ok := l.Find(0x200)
	if !ok {
		t.Fatal("Find(0x200) = false, want true")
	}
	if c.MaxSampleRate != 10 {
		t.Errorf("MaxSampleRate = %v, want 10", c.MaxSampleRate)
	}
	if _, ok := l.Find(0x999); ok {
		t.Error("Find(0x999) = true, want false")
	}
}

func TestConfigList_Sharing(t *testing.T) {
	a := alloc.NewTracker(&alloc.Config{})
	l := holder.NewConfigList(a, holder.Owning)
	for _, c := range testConfigs() {
		l.AppendClone(&c)
	}

	held, err := l.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	l.Release()
	if got := a.Stats().LiveRecords; got != 3 {
		t.Errorf("LiveRecords = %d while held, want 3", got)
	}

	held.Release()
	if a.Stats().Leaked() {
		t.Errorf("Stats() = %+v, want nothing live", a.Stats())
	}
	if _, err := held.Acquire(); !errors.Is(err, holder.ErrReleased) {
		t.Errorf("Acquire() error = %v, want ErrReleased", err)
	}
}

func TestConfigList_AppendCloneBorrowing(t *testing.T) {
	a := alloc.NewTracker(&alloc.Config{})
	l := holder.NewConfigList(a, holder.Borrowing)

	if err := l.AppendClone(&propconfig.PropertyConfig{}); !errors.Is(err, holder.ErrNotOwning) {
		t.Errorf("AppendClone() error = %v, want ErrNotOwning", err)
	}
	if l.Ownership() != holder.Borrowing {
		t.Errorf("Ownership() = %v, want borrowing", l.Ownership())
	}
}
