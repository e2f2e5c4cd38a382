package ili9486

// SetWindow programs the panel RAM region [x0,x1]×[y0,y1], bounds inclusive,
// and arms the controller for a memory write.
//
// The controller keeps the window and its write pointer until the next window
// is programmed: the data bytes that follow, in this bracket or any later
// one, fill the region left to right then top to bottom. StreamFill and
// StreamBuffer rely on this and never re-address per pixel.
func (d *Dev) SetWindow(x0, y0, x1, y1 int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ready(); err != nil {
		return err
	}
	if x0 < 0 || y0 < 0 || x0 > x1 || y0 > y1 || x1 >= Width || y1 >= Height {
		return ErrOutOfBounds
	}
	return d.setWindow(x0, y0, x1, y1)
}

// setWindow is SetWindow without validation. Callers clip first.
func (d *Dev) setWindow(x0, y0, x1, y1 int) error {
	return d.bracket(func() error {
		if err := d.writeCommand(columnAddressSet); err != nil {
			return err
		}
		if err := d.writeDataWord(uint16(x0)); err != nil {
			return err
		}
		if err := d.writeDataWord(uint16(x1)); err != nil {
			return err
		}
		if err := d.writeCommand(pageAddressSet); err != nil {
			return err
		}
		if err := d.writeDataWord(uint16(y0)); err != nil {
			return err
		}
		if err := d.writeDataWord(uint16(y1)); err != nil {
			return err
		}
		return d.writeCommand(memoryWrite)
	})
}
