package http

import (
	"github.com/guttosm/pantry-service/internal/domain/dto"
	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/domain/quantity"
	"github.com/guttosm/pantry-service/internal/inventory"
	"github.com/guttosm/pantry-service/internal/service"
)

func toPackageResponses(pkgs []model.Package) []dto.PackageResponse {
	out := make([]dto.PackageResponse, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, dto.PackageResponse{
			ID:               p.ID,
			ItemName:         p.ItemName,
			OriginalQuantity: p.OriginalQuantity,
			TotalQuantity:    p.TotalQuantity,
			Unit:             string(p.Unit),
			ExpiryDate:       p.ExpiryDate,
			LocationID:       p.LocationID,
			OwnerID:          p.OwnerID,
			IsPrivate:        p.IsPrivate,
			Version:          p.Version,
		})
	}
	return out
}

func toGroupResponses(groups []inventory.Group) []dto.GroupResponse {
	out := make([]dto.GroupResponse, 0, len(groups))
	for _, g := range groups {
		buckets := make([]dto.BucketResponse, 0, len(g.Buckets))
		for _, b := range g.Buckets {
			buckets = append(buckets, dto.BucketResponse{
				SizeKey:      b.SizeKey(),
				OriginalSize: b.OriginalSize,
				FullCount:    len(b.Full),
				PartialTotal: b.PartialTotal(),
				Total:        b.Total(),
				NextExpiry:   b.NextExpiry,
				Full:         toPackageResponses(b.Full),
				Partial:      toPackageResponses(b.Partial),
			})
		}
		out = append(out, dto.GroupResponse{
			Key:        g.Key,
			Name:       g.Name,
			Unit:       string(g.Unit),
			Total:      g.Total(),
			NextExpiry: g.NextExpiry,
			Buckets:    buckets,
		})
	}
	return out
}

func toLocationGroupsResponses(views []inventory.LocationGroups) []dto.LocationGroupsResponse {
	out := make([]dto.LocationGroupsResponse, 0, len(views))
	for _, v := range views {
		out = append(out, dto.LocationGroupsResponse{
			LocationID: v.LocationID,
			Groups:     toGroupResponses(v.Groups),
		})
	}
	return out
}

func toMutationResponse(res *service.MutationResult) dto.MutationResponse {
	return dto.MutationResponse{
		Updated:  len(res.Diff.Updates),
		Removed:  len(res.Diff.Removals),
		Inserted: len(res.Diff.Insertions),
		Groups:   toGroupResponses(res.Groups),
	}
}

func toQuantityResponse(q quantity.Quantity) dto.QuantityResponse {
	return dto.QuantityResponse{Amount: q.Amount, Unit: string(q.Unit)}
}

func toConsumptionResponse(out *service.ConsumptionOutcome) dto.ConsumptionResponse {
	resp := dto.ConsumptionResponse{
		Deductions: make([]dto.DeductionResponse, 0, len(out.Deductions)),
		Leftovers:  toPackageResponses(out.Leftovers),
		Groups:     toGroupResponses(out.Groups),
	}
	for _, d := range out.Deductions {
		resp.Deductions = append(resp.Deductions, dto.DeductionResponse{
			GroupKey:    d.GroupKey,
			ItemName:    d.ItemName,
			Requested:   toQuantityResponse(d.Requested),
			Deducted:    toQuantityResponse(d.Deducted),
			Ingredients: d.Ingredients,
		})
	}
	for _, s := range out.Shortfalls {
		resp.Shortfalls = append(resp.Shortfalls, dto.ShortfallResponse{
			GroupKey:    s.GroupKey,
			ItemName:    s.ItemName,
			Missing:     toQuantityResponse(s.Missing),
			Ingredients: s.Ingredients,
		})
	}
	for _, u := range out.Unmatched {
		resp.Unmatched = append(resp.Unmatched, dto.UnmatchedResponse{Ingredient: u.Ingredient, Reason: u.Reason})
	}
	return resp
}

func toLocationResponse(l model.Location) dto.LocationResponse {
	return dto.LocationResponse{
		ID:          l.ID,
		Name:        l.Name,
		Kind:        string(l.Kind),
		OwnerID:     l.OwnerID,
		HouseholdID: l.HouseholdID,
		CreatedAt:   l.CreatedAt,
	}
}

func toNutritionFacts(r *dto.NutritionFactsRequest) *model.NutritionFacts {
	if r == nil {
		return nil
	}
	return &model.NutritionFacts{
		PerServing: model.Macros{
			Calories: r.Calories,
			Protein:  r.Protein,
			Carbs:    r.Carbs,
			Fat:      r.Fat,
			Fiber:    r.Fiber,
			Sugar:    r.Sugar,
		},
		ServingSize: model.ServingSize{Amount: r.ServingSize, Unit: r.ServingSizeUnit},
	}
}
