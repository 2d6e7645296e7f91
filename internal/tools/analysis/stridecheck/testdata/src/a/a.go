package a

type Cursor struct{}

func (c *Cursor) NextCharacter(peek bool, stride int) rune { return 0 }

type Reader interface {
	NextCharacter(peek bool, stride int) rune
}

type other struct{}

func (other) NextCharacter(peek bool, stride int64) rune { return 0 }

func NextCharacter(peek bool, stride int) rune { return 0 }

const back = -1

func f(c *Cursor, r Reader, o other, n int) {
	c.NextCharacter(false, 1)
	c.NextCharacter(true, 3)
	c.NextCharacter(true, n)
	c.NextCharacter(false, 0)   // want `stride 0 passed to NextCharacter is smaller than 1`
	r.NextCharacter(true, back) // want `stride -1 passed to NextCharacter is smaller than 1`
	r.NextCharacter(true, 2-3)  // want `stride -1 passed to NextCharacter is smaller than 1`
	o.NextCharacter(false, 0)
	NextCharacter(false, 0)
}
