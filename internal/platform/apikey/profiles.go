package apikey

import "github.com/Gabryellzs/blecks-david-sub000/internal/domain"

// TikTokProfile descreve a TikTok Business API para o adaptador de chave estática
func TikTokProfile() Profile {
	return Profile{
		CampaignPath:  "/open_api/v1.3/campaign/get/",
		AdPath:        "/open_api/v1.3/ad/get/",
		ReportPath:    "/open_api/v1.3/report/integrated/get/",
		AdvertiserKey: "advertiser_id",
		SuccessCode:   0,
		StatusTable: map[string]domain.RecordStatus{
			"ENABLE":                  domain.StatusActive,
			"DISABLE":                 domain.StatusPaused,
			"FROZEN":                  domain.StatusPaused,
			"DELETE":                  domain.StatusDeleted,
			"CAMPAIGN_STATUS_ENABLE":  domain.StatusActive,
			"CAMPAIGN_STATUS_DISABLE": domain.StatusPaused,
			"CAMPAIGN_STATUS_DELETE":  domain.StatusDeleted,
		},
	}
}

// KwaiProfile descreve a Kwai for Business API para o adaptador de chave estática
func KwaiProfile() Profile {
	return Profile{
		CampaignPath:  "/rest/n/mapi/campaign/list",
		AdPath:        "/rest/n/mapi/unit/list",
		ReportPath:    "/rest/n/mapi/report/campaign",
		AdvertiserKey: "account_id",
		SuccessCode:   200,
		StatusTable: map[string]domain.RecordStatus{
			"DELIVERING": domain.StatusActive,
			"ACTIVE":     domain.StatusActive,
			"SUSPENDED":  domain.StatusPaused,
			"PAUSED":     domain.StatusPaused,
			"DELETED":    domain.StatusDeleted,
		},
	}
}
