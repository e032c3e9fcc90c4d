/*
 * @module service/event/publisher
 * @description 分析完成事件发布器，支持Kafka与MQTT两种消息通道
 * @architecture 事件驱动架构 - 适配器模式封装消息客户端
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 分析完成 -> 构造事件 -> 发布到配置的消息通道
 * @rules 事件发布为尽力而为, 失败仅记录日志, 不影响分析主流程
 * @dependencies github.com/segmentio/kafka-go, github.com/eclipse/paho.mqtt.golang
 * @refs service/review/analyzer.go, service/init.go
 */

package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"brandreview-service/service/models"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/segmentio/kafka-go"
)

const defaultTopic = "brandreview.analysis.completed"

// AnalysisEvent 分析完成事件载荷
type AnalysisEvent struct {
	Timestamp  string                    `json:"timestamp"`
	Parameters models.AnalysisParameters `json:"parameters"`
	TotalScore int                       `json:"totalScore"`
	RiskLevel  string                    `json:"riskLevel"`
	Approver   string                    `json:"approver"`
	IssueCount int                       `json:"issueCount"`
}

// Publisher 分析完成事件发布器
type Publisher struct {
	kafkaWriter *kafka.Writer
	mqttClient  mqtt.Client
	topic       string
}

// NewPublisherFromEnv 根据环境变量创建事件发布器
// EVENT_KAFKA_BROKERS 启用Kafka通道, EVENT_MQTT_BROKER 启用MQTT通道,
// 两者均未配置时返回 nil, 分析流程跳过事件发布
func NewPublisherFromEnv() *Publisher {
	topic := os.Getenv("EVENT_TOPIC")
	if topic == "" {
		topic = defaultTopic
	}

	p := &Publisher{topic: topic}
	enabled := false

	if brokers := os.Getenv("EVENT_KAFKA_BROKERS"); brokers != "" {
		p.kafkaWriter = &kafka.Writer{
			Addr:         kafka.TCP(strings.Split(brokers, ",")...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
			Async:        false,
		}
		enabled = true
		slog.Info("Kafka事件通道已启用", "brokers", brokers, "topic", topic)
	}

	if broker := os.Getenv("EVENT_MQTT_BROKER"); broker != "" {
		opts := mqtt.NewClientOptions().
			AddBroker(broker).
			SetClientID(fmt.Sprintf("brandreview-%d", time.Now().UnixNano())).
			SetConnectTimeout(10 * time.Second).
			SetAutoReconnect(true)

		client := mqtt.NewClient(opts)
		if token := client.Connect(); token.WaitTimeout(10*time.Second) && token.Error() == nil {
			p.mqttClient = client
			enabled = true
			slog.Info("MQTT事件通道已启用", "broker", broker, "topic", topic)
		} else {
			slog.Warn("MQTT连接失败, 事件通道未启用", "broker", broker, "error", token.Error())
		}
	}

	if !enabled {
		return nil
	}
	return p
}

// PublishAnalysisCompleted 发布分析完成事件
func (p *Publisher) PublishAnalysisCompleted(analysis *models.Analysis) {
	event := AnalysisEvent{
		Timestamp:  analysis.Timestamp,
		Parameters: analysis.Parameters,
		TotalScore: analysis.Scores.Total,
		RiskLevel:  analysis.Approval.RiskLevel,
		Approver:   analysis.Approval.Approver,
		IssueCount: len(analysis.Issues),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		slog.Warn("序列化分析事件失败", "error", err)
		return
	}

	if p.kafkaWriter != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := p.kafkaWriter.WriteMessages(ctx, kafka.Message{
			Key:   []byte(analysis.Approval.RiskLevel),
			Value: payload,
		})
		cancel()
		if err != nil {
			slog.Warn("Kafka事件发布失败", "topic", p.topic, "error", err)
		}
	}

	if p.mqttClient != nil {
		token := p.mqttClient.Publish(p.topic, 1, false, payload)
		if token.WaitTimeout(10*time.Second) && token.Error() != nil {
			slog.Warn("MQTT事件发布失败", "topic", p.topic, "error", token.Error())
		}
	}
}

// Close 关闭消息通道连接
func (p *Publisher) Close() error {
	var firstErr error

	if p.kafkaWriter != nil {
		if err := p.kafkaWriter.Close(); err != nil {
			firstErr = err
		}
	}
	if p.mqttClient != nil {
		p.mqttClient.Disconnect(250)
	}
	return firstErr
}
