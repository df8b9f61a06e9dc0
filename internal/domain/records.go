package domain

import (
	"encoding/json"
	"time"
)

// RecordStatus é o vocabulário canônico de status de campanhas e anúncios.
// Cada adaptador traduz o vocabulário do fornecedor para este enum.
type RecordStatus string

const (
	StatusActive   RecordStatus = "ACTIVE"
	StatusPaused   RecordStatus = "PAUSED"
	StatusArchived RecordStatus = "ARCHIVED"
	StatusDeleted  RecordStatus = "DELETED"
	StatusPending  RecordStatus = "PENDING"
)

// LeadStatusNew é o status fixo atribuído a leads recém-descobertos,
// inclusive os aproximados a partir de eventos de conversão de analytics.
const LeadStatusNew = "NEW"

// PlatformRecord é implementado por todo registro canônico. O campo platform
// é o único discriminante usado para agrupamento e filtragem.
type PlatformRecord interface {
	PlatformKind() PlatformKind
}

// CampaignData é o formato canônico de uma campanha, independente do fornecedor
type CampaignData struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Status      RecordStatus    `json:"status"`
	Objective   string          `json:"objective,omitempty"`
	Spend       float64         `json:"spend"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	CTR         float64         `json:"ctr"`
	CPC         float64         `json:"cpc"`
	CPM         float64         `json:"cpm"`
	Reach       int64           `json:"reach"`
	Frequency   float64         `json:"frequency"`
	StartDate   *time.Time      `json:"start_date,omitempty"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Platform    PlatformKind    `json:"platform"`
	Raw         json.RawMessage `json:"raw,omitempty"`
}

func (c CampaignData) PlatformKind() PlatformKind { return c.Platform }

// AdData é o formato canônico de um anúncio individual
type AdData struct {
	ID          string          `json:"id"`
	CampaignID  string          `json:"campaign_id,omitempty"`
	Name        string          `json:"name"`
	Status      RecordStatus    `json:"status"`
	Type        string          `json:"type,omitempty"`
	Spend       float64         `json:"spend"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	CTR         float64         `json:"ctr"`
	CPC         float64         `json:"cpc"`
	CPM         float64         `json:"cpm"`
	Reach       int64           `json:"reach"`
	Frequency   float64         `json:"frequency"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Platform    PlatformKind    `json:"platform"`
	Raw         json.RawMessage `json:"raw,omitempty"`
}

func (a AdData) PlatformKind() PlatformKind { return a.Platform }

// LeadData é o formato canônico de um lead capturado em uma plataforma
type LeadData struct {
	ID         string          `json:"id"`
	CampaignID string          `json:"campaign_id,omitempty"`
	AdID       string          `json:"ad_id,omitempty"`
	Name       string          `json:"name,omitempty"`
	Email      string          `json:"email,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	Platform   PlatformKind    `json:"platform"`
	Raw        json.RawMessage `json:"raw,omitempty"`
}

func (l LeadData) PlatformKind() PlatformKind { return l.Platform }
