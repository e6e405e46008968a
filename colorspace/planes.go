package colorspace

import "github.com/thundermage117/codec/pixel"

// Split separates a Y,Cr,Cb image into three single-channel planes
func Split(ycrcb *pixel.Image) (y, cr, cb *pixel.Image, err error) {
	if ycrcb == nil || ycrcb.Channels() < 3 {
		return nil, nil, nil, ErrChannelCount
	}
	if y, err = ycrcb.Plane(ChannelY); err != nil {
		return
	}
	if cr, err = ycrcb.Plane(ChannelCr); err != nil {
		return
	}
	cb, err = ycrcb.Plane(ChannelCb)
	return
}

// Merge interleaves Y, Cr and Cb planes into one 3-channel image
func Merge(y, cr, cb *pixel.Image) (*pixel.Image, error) {
	return pixel.FromPlanes(y, cr, cb)
}
