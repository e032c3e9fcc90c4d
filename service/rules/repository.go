/*
 * @module service/rules/repository
 * @description 品牌规则仓库，负责规则集的加载、校验、原子替换和快照读取
 * @architecture 分层架构 - 规则存储层
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 规则源解析 -> 文档校验 -> 原子替换 -> 快照读取
 * @rules 规则集整体加载, 失败时保留已加载的规则集; 加载成功后只读
 * @dependencies service/models, github.com/go-redis/redis/v8
 * @refs service/review/evaluator.go, service/scheduler
 */

package rules

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"brandreview-service/service/models"
)

// Status 规则仓库状态
type Status struct {
	Loaded      bool      `json:"loaded"`
	Version     string    `json:"version,omitempty"`
	LastUpdated string    `json:"lastUpdated,omitempty"`
	Source      string    `json:"source,omitempty"`
	RuleCount   int       `json:"ruleCount"`
	LoadedAt    time.Time `json:"loadedAt,omitempty"`
}

// Repository 品牌规则仓库
// 持有当前规则集, 加载成功时整体原子替换
type Repository struct {
	mu         sync.RWMutex
	current    *models.RuleSet
	source     string
	loadedAt   time.Time
	cache      *RemoteCache
	httpClient *http.Client
}

// NewRepository 创建规则仓库实例
func NewRepository(cache *RemoteCache) *Repository {
	return &Repository{
		cache:      cache,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Load 加载规则集
// source 支持四种形式: *models.RuleSet 对象、原始JSON字节、HTTP(S) URL、本地文件路径
// 任一环节失败返回 *RuleLoadError, 已加载的规则集保持不变
func (r *Repository) Load(ctx context.Context, source interface{}) error {
	var (
		ruleSet    *models.RuleSet
		sourceName string
		err        error
	)

	switch src := source.(type) {
	case *models.RuleSet:
		sourceName = "inline"
		ruleSet = cloneRuleSet(src)
	case models.RuleSet:
		sourceName = "inline"
		ruleSet = cloneRuleSet(&src)
	case []byte:
		sourceName = "bytes"
		ruleSet, err = parseRuleSet(src)
	case string:
		sourceName = src
		var data []byte
		if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
			data, err = r.fetchRemote(ctx, src)
		} else {
			data, err = os.ReadFile(src)
		}
		if err == nil {
			ruleSet, err = parseRuleSet(data)
		}
	default:
		return newLoadError("unknown", fmt.Errorf("不支持的规则源类型: %T", source))
	}

	if err != nil {
		return newLoadError(sourceName, err)
	}

	if err := normalizeRuleSet(ruleSet); err != nil {
		return newLoadError(sourceName, err)
	}

	r.mu.Lock()
	r.current = ruleSet
	r.source = sourceName
	r.loadedAt = time.Now()
	r.mu.Unlock()

	slog.Info("规则集加载成功", "version", ruleSet.Version, "source", sourceName, "rules", ruleSet.RuleCount())
	return nil
}

// LoadDefault 加载内置的默认规则集
func (r *Repository) LoadDefault() error {
	if err := r.Load(context.Background(), DefaultRuleSet()); err != nil {
		return err
	}

	r.mu.Lock()
	r.source = "embedded"
	r.mu.Unlock()
	return nil
}

// Snapshot 读取当前规则集快照
// 未加载时返回 ErrNotLoaded
func (r *Repository) Snapshot() (*models.RuleSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.current == nil {
		return nil, ErrNotLoaded
	}
	return r.current, nil
}

// Status 返回仓库状态
func (r *Repository) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.current == nil {
		return Status{Loaded: false}
	}
	return Status{
		Loaded:      true,
		Version:     r.current.Version,
		LastUpdated: r.current.LastUpdated,
		Source:      r.source,
		RuleCount:   r.current.RuleCount(),
		LoadedAt:    r.loadedAt,
	}
}

// fetchRemote 拉取远程规则文档, 优先读缓存
func (r *Repository) fetchRemote(ctx context.Context, url string) ([]byte, error) {
	if data, ok := r.cache.Get(ctx, url); ok {
		slog.Debug("规则文档命中缓存", "url", url)
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("创建HTTP请求失败: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("拉取规则文档失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("拉取规则文档失败: HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取规则文档失败: %w", err)
	}

	r.cache.Set(ctx, url, data)
	return data, nil
}

// parseRuleSet 解析规则文档
func parseRuleSet(data []byte) (*models.RuleSet, error) {
	var ruleSet models.RuleSet
	if err := json.Unmarshal(data, &ruleSet); err != nil {
		return nil, fmt.Errorf("规则文档格式错误: %w", err)
	}
	return &ruleSet, nil
}

// normalizeRuleSet 校验并规范化规则集
// 短语统一转小写, 未识别的严重级别显式降级为 info, 负扣分视为文档错误
func normalizeRuleSet(rs *models.RuleSet) error {
	if rs == nil {
		return fmt.Errorf("规则集为空")
	}
	if rs.Version == "" {
		return fmt.Errorf("规则集缺少 version 字段")
	}

	normalizeRules := func(category string, list []models.Rule) error {
		for i := range list {
			if list[i].Penalty < 0 {
				return fmt.Errorf("分类 %s 规则 %s 的扣分为负数", category, list[i].ID)
			}
			list[i].Phrase = strings.ToLower(list[i].Phrase)
			if !list[i].Severity.IsValid() {
				list[i].Severity = models.SeverityInfo
			}
		}
		return nil
	}

	if err := normalizeRules("brandTone", rs.BrandTone); err != nil {
		return err
	}
	if err := normalizeRules("legalClaims", rs.LegalClaims); err != nil {
		return err
	}
	if err := normalizeRules("sustainability", rs.Sustainability); err != nil {
		return err
	}
	if err := normalizeRules("technical", rs.Technical); err != nil {
		return err
	}
	for country, list := range rs.Cultural {
		if err := normalizeRules("cultural/"+country, list); err != nil {
			return err
		}
	}
	for asset, list := range rs.AssetTypes {
		if err := normalizeRules("assetTypes/"+asset, list); err != nil {
			return err
		}
	}

	for code, rule := range rs.BusinessUnits {
		if rule.Penalty < 0 {
			return fmt.Errorf("业务单元 %s 规则的扣分为负数", code)
		}
		for i := range rule.Required {
			rule.Required[i] = strings.ToLower(rule.Required[i])
		}
		if !rule.Severity.IsValid() {
			rule.Severity = models.SeverityInfo
			rs.BusinessUnits[code] = rule
		}
	}

	for name, rule := range rs.ContentTypeRules {
		if rule.Penalty < 0 {
			return fmt.Errorf("内容类型 %s 规则的扣分为负数", name)
		}
		for i := range rule.DisclaimerKeywords {
			rule.DisclaimerKeywords[i] = strings.ToLower(rule.DisclaimerKeywords[i])
		}
		if !rule.Severity.IsValid() {
			rule.Severity = models.SeverityInfo
			rs.ContentTypeRules[name] = rule
		}
	}

	return nil
}

// cloneRuleSet 深拷贝规则集, 防止调用方继续持有引用导致内部状态被修改
func cloneRuleSet(src *models.RuleSet) *models.RuleSet {
	data, _ := json.Marshal(src)
	var dst models.RuleSet
	_ = json.Unmarshal(data, &dst)
	return &dst
}
