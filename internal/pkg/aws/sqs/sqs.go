// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package sqs provides a client to make API requests to Amazon SQS,
// covering the two queues the scheduler wires together the Finder and
// the Doer with: the main operation-request queue and its dead-letter
// queue.
package sqs

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
)

type api interface {
	SendMessage(*sqs.SendMessageInput) (*sqs.SendMessageOutput, error)
	ReceiveMessage(*sqs.ReceiveMessageInput) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(*sqs.DeleteMessageInput) (*sqs.DeleteMessageOutput, error)
	ChangeMessageVisibility(*sqs.ChangeMessageVisibilityInput) (*sqs.ChangeMessageVisibilityOutput, error)
}

// Client wraps an Amazon SQS client bound to one queue URL.
type Client struct {
	client   api
	queueURL string
}

// New returns a Client configured against the input session and queue URL.
func New(s *session.Session, queueURL string) *Client {
	return &Client{client: sqs.New(s), queueURL: queueURL}
}

// Send enqueues one message body, used by the Finder to publish operation
// requests. The returned message ID is the provider-assigned identifier,
// useful for log correlation.
func (c *Client) Send(body []byte) (string, error) {
	out, err := c.client.SendMessage(&sqs.SendMessageInput{
		QueueUrl:    aws.String(c.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return "", fmt.Errorf("send message: %w", err)
	}
	return aws.StringValue(out.MessageId), nil
}

// Message is one received, in-flight message.
type Message struct {
	ReceiptHandle string
	Body          []byte
}

// Receive long-polls for up to maxMessages messages, waiting up to
// waitTimeSeconds for at least one to arrive. visibilityTimeoutSeconds
// hides a received message from other consumers for that long; the Doer
// must ack or nack before it elapses.
func (c *Client) Receive(maxMessages, waitTimeSeconds, visibilityTimeoutSeconds int64) ([]Message, error) {
	out, err := c.client.ReceiveMessage(&sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(c.queueURL),
		MaxNumberOfMessages: aws.Int64(maxMessages),
		WaitTimeSeconds:     aws.Int64(waitTimeSeconds),
		VisibilityTimeout:   aws.Int64(visibilityTimeoutSeconds),
	})
	if err != nil {
		return nil, fmt.Errorf("receive messages: %w", err)
	}
	msgs := make([]Message, len(out.Messages))
	for i, m := range out.Messages {
		msgs[i] = Message{
			ReceiptHandle: aws.StringValue(m.ReceiptHandle),
			Body:          []byte(aws.StringValue(m.Body)),
		}
	}
	return msgs, nil
}

// Ack deletes a successfully processed message so it is not redelivered.
func (c *Client) Ack(receiptHandle string) error {
	_, err := c.client.DeleteMessage(&sqs.DeleteMessageInput{
		QueueUrl:      aws.String(c.queueURL),
		ReceiptHandle: aws.String(receiptHandle),
	})
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}

// Nack makes a message immediately visible again for redelivery, by
// zeroing its remaining visibility timeout. Used for transient failures,
// where the Doer wants the next receive to pick the message back up
// without waiting out the full timeout.
func (c *Client) Nack(receiptHandle string) error {
	_, err := c.client.ChangeMessageVisibility(&sqs.ChangeMessageVisibilityInput{
		QueueUrl:          aws.String(c.queueURL),
		ReceiptHandle:     aws.String(receiptHandle),
		VisibilityTimeout: aws.Int64(0),
	})
	if err != nil {
		return fmt.Errorf("change message visibility: %w", err)
	}
	return nil
}
