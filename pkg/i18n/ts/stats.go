package ts

// Statistics counts messages by translation state.
type Statistics struct {
	Language   string `yaml:"language"`
	Finished   int    `yaml:"finished"`
	Unfinished int    `yaml:"unfinished"`
	Vanished   int    `yaml:"vanished"`
	Obsolete   int    `yaml:"obsolete"`
	Total      int    `yaml:"total"`
}

// Percent is the share of live messages that are translated.
func (s Statistics) Percent() float64 {
	live := s.Finished + s.Unfinished
	if live == 0 {
		return 100
	}
	return float64(s.Finished) * 100 / float64(live)
}

func Stats(c *Catalog) Statistics {
	stats := Statistics{Language: c.Language}
	c.Each(func(_ *Context, msg *Message) {
		stats.Total++
		switch msg.Translation.Type {
		case TypeObsolete:
			stats.Obsolete++
		case TypeVanished:
			stats.Vanished++
		default:
			if msg.Translation.Usable() {
				stats.Finished++
			} else {
				stats.Unfinished++
			}
		}
	})
	return stats
}
