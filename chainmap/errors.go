package chainmap

type chainmapError string

var _ error = chainmapError("")

func (err chainmapError) Error() string {
	return string(err)
}

const ErrInvalidCapacity = chainmapError("capacity must be at least 1")
