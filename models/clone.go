package models

// Clone returns a deep copy so callers can't reach into store-owned slices.
func (p Project) Clone() Project {
	out := p
	out.Files = cloneAttachments(p.Files)
	if p.Bids != nil {
		out.Bids = make([]Bid, len(p.Bids))
		for i, b := range p.Bids {
			out.Bids[i] = b.Clone()
		}
	}
	return out
}

func (b Bid) Clone() Bid {
	out := b
	out.Files = cloneAttachments(b.Files)
	if b.StatusHistory != nil {
		out.StatusHistory = append([]StatusEntry(nil), b.StatusHistory...)
	}
	return out
}

func cloneAttachments(in []Attachment) []Attachment {
	if in == nil {
		return nil
	}
	out := make([]Attachment, len(in))
	for i, a := range in {
		out[i] = a
		out[i].Data = append([]byte(nil), a.Data...)
	}
	return out
}
