package service

import "github.com/skip2/go-qrcode"

type DefaultQRGenerator struct{}

func (DefaultQRGenerator) Generate(data string) ([]byte, error) {
	return qrcode.Encode(data, qrcode.Medium, 256)
}

var _ QRGenerator = DefaultQRGenerator{}
