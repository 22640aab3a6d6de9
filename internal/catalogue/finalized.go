package catalogue

// Finalized is a read-only view over a catalogue that no longer accepts
// writes. It is safe for concurrent use.
type Finalized struct {
	c *Catalogue
}

func (f *Finalized) GetDistance(from, to StopID) (int, error) { return f.c.GetDistance(from, to) }

func (f *Finalized) SegmentDistance(from, to StopID) (int, error) {
	return f.c.SegmentDistance(from, to)
}

func (f *Finalized) FindStop(name string) *Stop { return f.c.FindStop(name) }
func (f *Finalized) FindBus(name string) *Bus   { return f.c.FindBus(name) }
func (f *Finalized) Stop(id StopID) Stop        { return f.c.Stop(id) }
func (f *Finalized) StopCount() int             { return f.c.StopCount() }
func (f *Finalized) BusCount() int              { return f.c.BusCount() }
func (f *Finalized) Stops() []Stop              { return f.c.Stops() }
func (f *Finalized) StopNames() []string        { return f.c.StopNames() }
func (f *Finalized) AllBuses() []string         { return f.c.AllBuses() }
func (f *Finalized) Buses() []Bus               { return f.c.Buses() }

func (f *Finalized) BusInfo(name string) (*BusInfo, error) { return f.c.BusInfo(name) }
func (f *Finalized) StopInfo(name string) *StopInfo        { return f.c.StopInfo(name) }
