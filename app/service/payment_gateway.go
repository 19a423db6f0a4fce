package service

import (
	"context"
	"errors"
	"strconv"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/iris"
)

// PayoutRequest adalah permintaan pencairan saldo hasil konversi poin.
type PayoutRequest struct {
	BeneficiaryName    string
	BeneficiaryEmail   string
	BeneficiaryBank    string // kode bank/e-wallet tujuan, mis. "gopay", "bca"
	BeneficiaryAccount string
	AmountIDR          int
	Notes              string
}

// Disbursement adalah hasil pencairan dari payment gateway.
type Disbursement struct {
	ReferenceNo string `json:"referenceNo"`
	Status      string `json:"status"`
}

// PaymentGateway mengabstraksi layanan pencairan dana eksternal supaya
// wallet service tidak terikat satu vendor; implementasi produksi memakai
// Midtrans Iris, tes memakai fake.
type PaymentGateway interface {
	Payout(ctx context.Context, req PayoutRequest) (*Disbursement, error)
}

type irisGateway struct {
	client iris.Client
}

// NewIrisGateway membuat PaymentGateway berbasis Midtrans Iris.
// Panggil saat bootstrap app; useProduction=false untuk sandbox.
func NewIrisGateway(serverKey string, useProduction bool) PaymentGateway {
	env := midtrans.Sandbox
	if useProduction {
		env = midtrans.Production
	}
	g := &irisGateway{}
	g.client.New(serverKey, env)
	return g
}

func (g *irisGateway) Payout(_ context.Context, req PayoutRequest) (*Disbursement, error) {
	if req.AmountIDR <= 0 {
		return nil, errors.New("invalid payout amount")
	}

	payoutReq := &iris.CreatePayoutReq{
		Payouts: []iris.CreatePayoutDetailReq{
			{
				BeneficiaryName:    req.BeneficiaryName,
				BeneficiaryAccount: req.BeneficiaryAccount,
				BeneficiaryBank:    req.BeneficiaryBank,
				BeneficiaryEmail:   req.BeneficiaryEmail,
				Amount:             strconv.Itoa(req.AmountIDR),
				Notes:              req.Notes,
			},
		},
	}

	res, err := g.client.CreatePayout(*payoutReq)
	if err != nil {
		return nil, err
	}
	if len(res.Payouts) == 0 {
		return nil, errors.New("payout response kosong")
	}
	return &Disbursement{
		ReferenceNo: res.Payouts[0].ReferenceNo,
		Status:      res.Payouts[0].Status,
	}, nil
}
