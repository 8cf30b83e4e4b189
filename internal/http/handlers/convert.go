package handlers

import "zapshift/internal/domain"

func toParcelDTO(p *domain.Parcel) parcelDTO {
	return parcelDTO{
		ID:             p.ID,
		TrackingID:     p.TrackingID,
		ParcelName:     p.ParcelName,
		SenderEmail:    p.SenderEmail,
		Cost:           p.Cost,
		DeliveryStatus: p.DeliveryStatus,
		PaymentStatus:  p.PaymentStatus,
		RiderID:        p.RiderID,
		RiderName:      p.RiderName,
		RiderEmail:     p.RiderEmail,
		CreatedAt:      p.CreatedAt,
	}
}

func toParcelDTOs(ps []domain.Parcel) []parcelDTO {
	out := make([]parcelDTO, 0, len(ps))
	for i := range ps {
		out = append(out, toParcelDTO(&ps[i]))
	}
	return out
}

func toRiderDTO(c *domain.Rider) riderDTO {
	return riderDTO{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		District:   c.District,
		WorkStatus: c.WorkStatus,
		Approval:   c.Approval,
	}
}

func toRiderDTOs(cs []domain.Rider) []riderDTO {
	out := make([]riderDTO, 0, len(cs))
	for i := range cs {
		out = append(out, toRiderDTO(&cs[i]))
	}
	return out
}

func toReceiptDTOs(rs []domain.PaymentReceipt) []receiptDTO {
	out := make([]receiptDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, receiptDTO{
			TransactionID: r.TransactionID,
			ParcelID:      r.ParcelID,
			TrackingID:    r.TrackingID,
			Amount:        r.Amount,
			Currency:      r.Currency,
			CustomerEmail: r.CustomerEmail,
			PaidAt:        r.PaidAt,
		})
	}
	return out
}

func toStatusCountDTOs(scs []domain.StatusCount) []statusCountDTO {
	out := make([]statusCountDTO, 0, len(scs))
	for _, sc := range scs {
		out = append(out, statusCountDTO{Status: sc.Status, Count: sc.Count})
	}
	return out
}

func toTrackingEventDTOs(es []domain.TrackingEvent) []trackingEventDTO {
	out := make([]trackingEventDTO, 0, len(es))
	for _, e := range es {
		out = append(out, trackingEventDTO{
			TrackingID: e.TrackingID,
			Status:     e.Status,
			CreatedAt:  e.CreatedAt,
		})
	}
	return out
}
